package combineur

import "strings"

// Query is a selector applied to a parsed tree. Supported qualifiers are
// tag names, .class (word match on the class attribute) and #id; steps are
// separated by whitespace (descendant) or '>' (direct child). An invalid
// selector yields an empty result.
type Query struct {
	tags []*Tag
}

type step struct {
	direct     bool
	qualifiers []string
}

func (t *Tag) Query(query string) *Query {
	steps, ok := parseSelector(query)

	if !ok {
		return &Query{}
	}

	tags := []*Tag{t}

	for _, s := range steps {
		tags = s.apply(tags)
	}

	return &Query{tags: tags}
}

// Query narrows an existing result with a further selector, evaluated from
// each matched tag.
func (q *Query) Query(query string) *Query {
	result := &Query{}

	for _, t := range q.tags {
		result.tags = append(result.tags, t.Query(query).tags...)
	}

	return result
}

func (q *Query) Get() []*Tag {
	return q.tags
}

func (q *Query) First() *Tag {
	if len(q.tags) == 0 {
		return nil
	}

	return q.tags[0]
}

func (q *Query) Last() *Tag {
	if len(q.tags) == 0 {
		return nil
	}

	return q.tags[len(q.tags)-1]
}

func (s *step) apply(tags []*Tag) []*Tag {
	var matched []*Tag

	for _, t := range tags {
		if s.direct {
			for i := range t.Children {
				c := &t.Children[i]

				if matchQualifiers(c, s.qualifiers) {
					matched = append(matched, c)
				}
			}
		} else {
			filterDeep(t, s.qualifiers, &matched)
		}
	}

	return matched
}

// filterDeep collects matching descendants of t, not t itself.
func filterDeep(t *Tag, qualifiers []string, matched *[]*Tag) {
	for i := range t.Children {
		c := &t.Children[i]

		if matchQualifiers(c, qualifiers) {
			*matched = append(*matched, c)
		}

		filterDeep(c, qualifiers, matched)
	}
}

func matchQualifiers(t *Tag, qualifiers []string) bool {
	for _, q := range qualifiers {
		switch q[0] {
		case '.':
			class, _ := t.Attr("class")

			if !hasWord(class, q[1:]) {
				return false
			}
		case '#':
			id, _ := t.Attr("id")

			if id != q[1:] {
				return false
			}
		default:
			if t.Name != q {
				return false
			}
		}
	}

	return true
}

func hasWord(haystack string, word string) bool {
	for _, w := range strings.Fields(haystack) {
		if w == word {
			return true
		}
	}

	return false
}

func parseSelector(query string) ([]step, bool) {
	var steps []step

	i := 0
	length := len(query)

	for i < length {
		for i < length && query[i] == ' ' {
			i++
		}

		if i == length {
			break
		}

		current := step{}

		if query[i] == '>' {
			current.direct = true
			i++

			for i < length && query[i] == ' ' {
				i++
			}
		}

		for i < length && query[i] != ' ' && query[i] != '>' {
			start := i

			if query[i] == '.' || query[i] == '#' {
				i++
			}

			for i < length && isValidQualifierChar(query[i]) {
				i++
			}

			if i == start || i == start+1 && !isValidQualifierChar(query[start]) {
				return nil, false
			}

			current.qualifiers = append(current.qualifiers, query[start:i])
		}

		if len(current.qualifiers) == 0 {
			return nil, false
		}

		steps = append(steps, current)
	}

	return steps, true
}

func isValidQualifierChar(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('A' <= c && c <= 'Z') ||
		('a' <= c && c <= 'z') ||
		c == '-' || c == '_'
}
