package main

import (
	"fmt"
	"log"

	"combineur"
)

const doc = `
<library name="downtown">
    <shelf id="s1" label="fiction">
        <book title="Leviathan Wakes" year="2011"/>
        <book title="The Fifth Season" year="2015"/>
    </shelf>
    <shelf id="s2" label="reference">
        <book title="The Go Programming Language" year="2015"/>
    </shelf>
</library>`

func listBooks() {
	result := combineur.Element()(doc)

	if !result.OK {
		log.Fatalf("parse failed at %q", result.Rest)
	}

	root := result.Value

	for _, book := range root.Query("shelf > book").Get() {
		title, _ := book.Attr("title")
		year, _ := book.Attr("year")
		fmt.Printf("%s (%s)\n", title, year)
	}

	if fiction := root.Query("#s1").First(); fiction != nil {
		fmt.Println("fiction books:", len(fiction.FindAll("book")))
	}
}

func main() {
	listBooks()
}
