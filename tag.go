package combineur

// Attribute is one name="value" pair. Attributes keep source order and
// duplicates; lookups take the first occurrence.
type Attribute struct {
	Name  string
	Value string
}

type Tag struct {
	Name       string
	Attributes []Attribute
	Children   []Tag
}

func (t *Tag) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

func (t *Tag) First(name string) *Tag {
	for i := range t.Children {
		c := &t.Children[i]

		if c.Name == name {
			return c
		}

		if found := c.First(name); found != nil {
			return found
		}
	}

	return nil
}

func (t *Tag) FindAll(name string) []*Tag {
	tags := make([]*Tag, 0)

	for i := range t.Children {
		c := &t.Children[i]

		if c.Name == name {
			tags = append(tags, c)
		}

		tags = append(tags, c.FindAll(name)...)
	}

	return tags
}
