package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ViewID names an instruction page an entry opens.
type ViewID string

const (
	ViewAbdominal      ViewID = "abdominal"
	ViewChest          ViewID = "chest"
	ViewComplete       ViewID = "complete"
	ViewBhramari       ViewID = "bhramari"
	ViewNadiShodhana   ViewID = "nadi_shodhana"
	ViewUjjayi         ViewID = "ujjayi"
	ViewSuryaBhedana   ViewID = "surya_bhedana"
	ViewChandraBhedana ViewID = "chandra_bhedana"
	ViewSheetali       ViewID = "sheetali"
	ViewSheetkari      ViewID = "sheetkari"
	ViewBox            ViewID = "box"
	ViewEmergency      ViewID = "emergency"
)

// Entry is one selectable exercise card.
type Entry struct {
	Title       string // may contain a line break
	Image       string
	Gradient    [2]string // start, end as #RRGGBB
	Destination ViewID
}

// Label returns the title on a single line.
func (e Entry) Label() string {
	return strings.Join(strings.Fields(e.Title), " ")
}

// Section is a named, ordered group of entries.
type Section struct {
	Name    string
	Entries []Entry
}

// Course is a guided program listed on the courses tab.
type Course struct {
	Title   string
	Summary string
	Lessons int
	Minutes int
}

// Instruction is the text behind an instruction page.
type Instruction struct {
	Name  string
	Steps []string
}

// Catalog is the full static content of the app.
type Catalog struct {
	Sections     []Section
	Courses      []Course
	Instructions map[ViewID]Instruction
}

//go:embed catalog.toml
var catalogTOML []byte

var builtin = mustParse(catalogTOML)

// Default returns a copy of the built-in catalog.
func Default() Catalog {
	return builtin.clone()
}

// Entries returns every entry in display order.
func (c Catalog) Entries() []Entry {
	var out []Entry
	for _, s := range c.Sections {
		out = append(out, s.Entries...)
	}
	return out
}

// Instruction looks up the page text for id.
func (c Catalog) Instruction(id ViewID) (Instruction, bool) {
	in, ok := c.Instructions[id]
	return in, ok
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Parse decodes and validates catalog TOML.
func Parse(data []byte) (Catalog, error) {
	var raw struct {
		Sections []struct {
			Name    string `toml:"name"`
			Entries []struct {
				Title       string   `toml:"title"`
				Image       string   `toml:"image"`
				Gradient    []string `toml:"gradient"`
				Destination string   `toml:"destination"`
			} `toml:"entries"`
		} `toml:"sections"`
		Courses []struct {
			Title   string `toml:"title"`
			Summary string `toml:"summary"`
			Lessons int    `toml:"lessons"`
			Minutes int    `toml:"minutes"`
		} `toml:"courses"`
		Instructions map[string]struct {
			Name  string   `toml:"name"`
			Steps []string `toml:"steps"`
		} `toml:"instructions"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	cat := Catalog{Instructions: make(map[ViewID]Instruction, len(raw.Instructions))}
	for id, in := range raw.Instructions {
		if strings.TrimSpace(in.Name) == "" {
			return Catalog{}, fmt.Errorf("instruction %q: name required", id)
		}
		cat.Instructions[ViewID(id)] = Instruction{Name: in.Name, Steps: in.Steps}
	}

	for _, rs := range raw.Sections {
		if strings.TrimSpace(rs.Name) == "" {
			return Catalog{}, fmt.Errorf("section without name")
		}
		section := Section{Name: rs.Name}
		for _, re := range rs.Entries {
			if strings.TrimSpace(re.Title) == "" {
				return Catalog{}, fmt.Errorf("section %s: entry without title", rs.Name)
			}
			if len(re.Gradient) != 2 || !hexColor.MatchString(re.Gradient[0]) || !hexColor.MatchString(re.Gradient[1]) {
				return Catalog{}, fmt.Errorf("entry %q: gradient must be two #RRGGBB colors", re.Title)
			}
			dest := ViewID(re.Destination)
			if _, ok := cat.Instructions[dest]; !ok {
				return Catalog{}, fmt.Errorf("entry %q: unknown destination %q", re.Title, re.Destination)
			}
			section.Entries = append(section.Entries, Entry{
				Title:       re.Title,
				Image:       re.Image,
				Gradient:    [2]string{re.Gradient[0], re.Gradient[1]},
				Destination: dest,
			})
		}
		cat.Sections = append(cat.Sections, section)
	}

	for _, rc := range raw.Courses {
		cat.Courses = append(cat.Courses, Course{
			Title:   rc.Title,
			Summary: rc.Summary,
			Lessons: rc.Lessons,
			Minutes: rc.Minutes,
		})
	}
	return cat, nil
}

func mustParse(data []byte) Catalog {
	cat, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return cat
}

func (c Catalog) clone() Catalog {
	out := Catalog{
		Sections:     make([]Section, len(c.Sections)),
		Courses:      append([]Course(nil), c.Courses...),
		Instructions: make(map[ViewID]Instruction, len(c.Instructions)),
	}
	for i, s := range c.Sections {
		out.Sections[i] = Section{Name: s.Name, Entries: append([]Entry(nil), s.Entries...)}
	}
	for id, in := range c.Instructions {
		out.Instructions[id] = Instruction{Name: in.Name, Steps: append([]string(nil), in.Steps...)}
	}
	return out
}
