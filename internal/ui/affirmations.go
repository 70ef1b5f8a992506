package ui

import "math/rand"

// Affirmations are the closing lines printed after a successful run.
var Affirmations = []string{
	"Ship it!",
	"Another fine component, ready for props.",
	"Your future self thanks you.",
	"Small pieces, loosely joined.",
	"That was quick. Go build something nice with it.",
	"Clean slate, sharp tools.",
	"One less file to create by hand.",
	"Tests next? Just a thought.",
	"Compose all the things.",
	"Looking good!",
}

// Sampler picks one string from a non-empty list.
type Sampler func(items []string) string

// RandomSample returns a uniformly random element of items.
func RandomSample(items []string) string {
	return items[rand.Intn(len(items))]
}
