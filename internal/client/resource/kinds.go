package resource

import (
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// Схемы ресурсов портфолио

var Skills = Kind{
	Name:         "skills",
	Label:        "Skill",
	Noun:         "skill",
	Plural:       "skills",
	CreateTitle:  "Add New Skill",
	EditTitle:    "Edit Skill",
	CreateSubmit: "Add Skill",
	EditSubmit:   "Update Skill",
	Transport:    TransportJSON,
	Fields: []form.Field{
		{Name: "name", Label: "Skill Name", Input: form.InputText, Required: true},
		{Name: "category", Label: "Category", Input: form.InputText, Required: true},
		{Name: "level", Label: "Level (%)", Input: form.InputNumber, Min: 0, Max: 100, Required: true},
	},
	Card: skillCard,
}

var Projects = Kind{
	Name:         "projects",
	Label:        "Project",
	Noun:         "project",
	Plural:       "projects",
	CreateTitle:  "Add New Project",
	EditTitle:    "Edit Project",
	CreateSubmit: "Add Project",
	EditSubmit:   "Update Project",
	Transport:    TransportMultipart,
	Fields: []form.Field{
		{Name: "title", Label: "Project Title", Input: form.InputText, Required: true},
		{Name: "description", Label: "Description", Input: form.InputTextarea, Required: true},
		{Name: "techStack", Label: "Tech Stack (comma-separated)", Input: form.InputText, List: true, Required: true},
		{Name: "date", Label: "Date", Input: form.InputMonth, Required: true},
	},
	Card: projectCard,
}

var Experience = Kind{
	Name:         "experience",
	Label:        "Experience",
	Noun:         "experience entry",
	Plural:       "experience entries",
	CreateTitle:  "Add New Experience",
	EditTitle:    "Edit Experience",
	CreateSubmit: "Add Experience",
	EditSubmit:   "Update Experience",
	Transport:    TransportJSON,
	Fields: []form.Field{
		{Name: "title", Label: "Job Title", Input: form.InputText, Required: true},
		{Name: "company", Label: "Company", Input: form.InputText, Required: true},
		{Name: "location", Label: "Location", Input: form.InputText, Required: true},
		{Name: "startDate", Label: "Start Date", Input: form.InputMonth, Required: true},
		{Name: "endDate", Label: "End Date", Input: form.InputMonth},
		{Name: "current", Label: "Currently Working Here", Input: form.InputCheckbox, Clears: "endDate"},
		{Name: "description", Label: "Description", Input: form.InputTextarea},
		// бэкенд ждет achievements строкой с JSON массивом
		{Name: "achievements", Label: "Achievements (comma-separated)", Input: form.InputText, List: true, Stringify: true},
	},
	Card: experienceCard,
}

var Blogs = Kind{
	Name:         "blogs",
	Label:        "Blog",
	Noun:         "blog post",
	Plural:       "blog posts",
	CreateTitle:  "Add Blog",
	EditTitle:    "Edit Blog",
	CreateSubmit: "Add Blog",
	EditSubmit:   "Update Blog",
	Transport:    TransportMultipart,
	Fields: []form.Field{
		{Name: "title", Label: "Title", Input: form.InputText, Required: true},
		{Name: "excerpt", Label: "Excerpt", Input: form.InputText},
		{Name: "content", Label: "Content", Input: form.InputTextarea, Required: true},
		{Name: "date", Label: "Date", Input: form.InputDate},
		{Name: "tags", Label: "Tags (comma-separated)", Input: form.InputText, List: true},
		{Name: "image", Label: "Image", Input: form.InputFile, Accept: "image/*"},
	},
	Card: blogCard,
}

var Education = Kind{
	Name:         "education",
	Label:        "Education",
	Noun:         "education entry",
	Plural:       "education entries",
	CreateTitle:  "Add Education",
	EditTitle:    "Edit Education",
	CreateSubmit: "Add",
	EditSubmit:   "Update",
	Transport:    TransportJSON,
	Fields: []form.Field{
		{Name: "institution", Label: "Institution", Input: form.InputText, Required: true},
		{Name: "degree", Label: "Degree", Input: form.InputText, Required: true},
		{Name: "field", Label: "Field", Input: form.InputText},
		{Name: "location", Label: "Location", Input: form.InputText},
		{Name: "startDate", Label: "Start Date", Input: form.InputMonth, Required: true},
		{Name: "endDate", Label: "End Date", Input: form.InputMonth},
		{Name: "description", Label: "Description", Input: form.InputTextarea},
	},
	Card: educationCard,
}

// All returns the schema table in dashboard order.
func All() []Kind {
	return []Kind{Skills, Projects, Experience, Blogs, Education}
}

// Lookup finds a kind by collection name.
func Lookup(name string) (Kind, bool) {
	for _, k := range All() {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// Names returns the collection names of all kinds.
func Names() []string {
	kinds := All()
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.Name)
	}
	return out
}

func skillCard(r Record) ui.Card {
	level := r.String("level")
	if level == "" {
		level = "0"
	}
	return ui.Card{
		Title:  r.String("name"),
		Lines:  []string{"Level: " + level + "%"},
		Badges: []ui.Badge{{Text: r.String("category"), Tone: ui.TonePrimary}},
	}
}

func projectCard(r Record) ui.Card {
	return ui.Card{
		Title:  r.String("title"),
		Lines:  []string{r.String("description")},
		Badges: tagBadges(r.Strings("techStack")),
	}
}

func experienceCard(r Record) ui.Card {
	where := r.String("company")
	if loc := r.String("location"); loc != "" {
		where += " - " + loc
	}

	end := r.String("endDate")
	tone := ui.ToneGray
	if r.Bool("current") {
		end = "Present"
		tone = ui.ToneSuccess
	}

	return ui.Card{
		Title:  r.String("title"),
		Lines:  []string{where, r.String("description")},
		Badges: []ui.Badge{{Text: r.String("startDate") + " - " + end, Tone: tone}},
	}
}

func blogCard(r Record) ui.Card {
	badges := tagBadges(r.Strings("tags"))
	badges = append(badges, ui.Badge{Text: r.String("date"), Tone: ui.ToneGray})
	return ui.Card{
		Title:  r.String("title"),
		Lines:  []string{r.String("excerpt")},
		Badges: badges,
	}
}

func educationCard(r Record) ui.Card {
	title := r.String("degree")
	if field := r.String("field"); field != "" {
		title += " - " + field
	}
	where := r.String("institution")
	if loc := r.String("location"); loc != "" {
		where += " • " + loc
	}
	period := r.String("startDate")
	if end := r.String("endDate"); end != "" {
		period += " - " + end
	}
	return ui.Card{
		Title:  title,
		Lines:  []string{where, r.String("description")},
		Badges: []ui.Badge{{Text: period, Tone: ui.ToneGray}},
	}
}

func tagBadges(tags []string) []ui.Badge {
	badges := make([]ui.Badge, 0, len(tags))
	for _, t := range tags {
		badges = append(badges, ui.Badge{Text: t, Tone: ui.TonePrimary})
	}
	return badges
}
