package main

import "github.com/google/btree"

const dictDegree = 8

// definition is a dictionary entry: a word name and its unresolved body.
type definition struct {
	name string
	body []string
}

func (def definition) Less(than btree.Item) bool {
	return def.name < than.(definition).name
}

// dictionary maps word names to their bodies, ordered by name.
type dictionary struct {
	tree *btree.BTree
}

// define sets the body of a word, replacing any prior definition.
func (dict *dictionary) define(name string, body []string) {
	if dict.tree == nil {
		dict.tree = btree.New(dictDegree)
	}
	dict.tree.ReplaceOrInsert(definition{name, body})
}

// lookup returns the stored body of a word; it must not be modified.
func (dict dictionary) lookup(name string) ([]string, bool) {
	if dict.tree == nil {
		return nil, false
	}
	if item := dict.tree.Get(definition{name: name}); item != nil {
		return item.(definition).body, true
	}
	return nil, false
}

func (dict dictionary) each(fn func(name string, body []string) bool) {
	if dict.tree == nil {
		return
	}
	dict.tree.Ascend(func(item btree.Item) bool {
		def := item.(definition)
		return fn(def.name, def.body)
	})
}

func (dict dictionary) len() int {
	if dict.tree == nil {
		return 0
	}
	return dict.tree.Len()
}
