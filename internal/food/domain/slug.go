package domain

import "github.com/gosimple/slug"

// Slugify transliterates title to ASCII, lowercases it and joins words with
// hyphens: "Café Latte" becomes "cafe-latte".
func Slugify(title string) string {
	return slug.Make(title)
}
