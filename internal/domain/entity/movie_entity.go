package entity

import "time"

type Genre struct {
	Name        string
	Description string
}

type Director struct {
	Name  string
	Bio   string
	Birth *time.Time
	Death *time.Time
}

// Movie is a read-mostly catalog record. Users reference movies by id in
// their favorites list.
type Movie struct {
	ID          string
	Title       string
	Description string
	Genre       Genre
	Director    Director
	Actors      []string
	ImagePath   string
	Featured    bool
}
