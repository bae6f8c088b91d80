package combineur

// The grammar below covers open, close and self-closing tags with quoted
// string attributes and nested children. Text bodies, comments, namespaces
// and entities are out of scope.

// QuotedString parses text between two double quotes; any character except
// the quote is allowed inside.
func QuotedString() Parser[string] {
	return Map(
		Right(
			MatchLiteral(`"`),
			Left(
				ZeroOrMore(Pred(AnyChar(), func(r rune) bool { return r != '"' })),
				MatchLiteral(`"`),
			),
		),
		func(chars []rune) string { return string(chars) },
	)
}

// AttributePair parses identifier="value".
func AttributePair() Parser[Attribute] {
	return Map(
		Both(Identifier(), Right(MatchLiteral("="), QuotedString())),
		func(p Pair[string, string]) Attribute {
			return Attribute{Name: p.Left, Value: p.Right}
		},
	)
}

// AttributeList parses zero or more whitespace-separated attribute pairs.
func AttributeList() Parser[[]Attribute] {
	return ZeroOrMore(Right(Space1(), AttributePair()))
}

func elementStart() Parser[Pair[string, []Attribute]] {
	return Right(MatchLiteral("<"), Both(Identifier(), AttributeList()))
}

// SingleElement parses a self-closing tag.
func SingleElement() Parser[Tag] {
	return Map(
		Left(elementStart(), MatchLiteral("/>")),
		func(p Pair[string, []Attribute]) Tag {
			return Tag{Name: p.Left, Attributes: p.Right}
		},
	)
}

// OpenElement parses an opening tag; its children are filled in by
// ParentElement.
func OpenElement() Parser[Tag] {
	return Map(
		Left(elementStart(), MatchLiteral(">")),
		func(p Pair[string, []Attribute]) Tag {
			return Tag{Name: p.Left, Attributes: p.Right}
		},
	)
}

// closeElement parses </name> and rejects any other name, restoring the
// input so the failure points at the offending closing tag.
func closeElement(expected string) Parser[string] {
	return Pred(
		Right(MatchLiteral("</"), Left(Identifier(), MatchLiteral(">"))),
		func(name string) bool { return name == expected },
	)
}

// ParentElement parses an opening tag, then any number of child elements,
// then the closing tag matching the name that was just parsed.
func ParentElement() Parser[Tag] {
	return AndThen(OpenElement(), func(open Tag) Parser[Tag] {
		return Map(
			Left(ZeroOrMore(Element()), closeElement(open.Name)),
			func(children []Tag) Tag {
				open.Children = children
				return open
			},
		)
	})
}

// Element is the grammar's entry point: a whitespace-wrapped self-closing
// or parent element. The recursive Element call inside ParentElement only
// runs after an opening tag has been consumed, so construction terminates
// and parsing makes progress on every descent.
func Element() Parser[Tag] {
	return WhitespaceWrap(Either(SingleElement(), ParentElement()))
}
