package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/4NDrew-42/ArtCine/config"
	pginfra "github.com/4NDrew-42/ArtCine/internal/infrastructure/postgres"
	"github.com/4NDrew-42/ArtCine/pkg/helpers"
)

type seedMovie struct {
	title       string
	description string
	genre       string
	genreDesc   string
	director    string
	actors      []string
	imagePath   string
	featured    bool
}

var movies = []seedMovie{
	{"Inception", "A thief enters the dreams of others to steal secrets.", "Science Fiction", "Fiction grounded in imagined science and technology.", "Christopher Nolan", []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"}, "http://example.com/inception.jpg", false},
	{"The Dark Knight", "Batman faces the Joker, a criminal mastermind.", "Action", "Fast-paced films built around physical feats and conflict.", "Christopher Nolan", []string{"Christian Bale", "Heath Ledger"}, "http://example.com/dark_knight.jpg", true},
	{"Forrest Gump", "A man with a low IQ influences various historical events in the 20th century USA.", "Drama", "Character-driven stories of realistic conflict.", "Robert Zemeckis", []string{"Tom Hanks"}, "http://example.com/forrest_gump.jpg", false},
	{"Avatar", "A paraplegic Marine is sent to the moon Pandora on a unique mission.", "Science Fiction", "Fiction grounded in imagined science and technology.", "James Cameron", []string{"Sam Worthington", "Zoe Saldana"}, "http://example.com/avatar.jpg", false},
	{"Titanic", "A romance blooms on the ill-fated R.M.S. Titanic.", "Romance", "Stories centered on love and relationships.", "James Cameron", []string{"Leonardo DiCaprio", "Kate Winslet"}, "http://example.com/titanic.jpg", true},
	{"The Godfather", "The aging patriarch of an organized crime dynasty transfers control of his empire to his reluctant son.", "Crime", "Stories of crime, its perpetrators and its pursuers.", "Francis Ford Coppola", []string{"Marlon Brando", "Al Pacino"}, "http://example.com/godfather.jpg", false},
	{"Jurassic Park", "A theme park with genetically-engineered dinosaurs turns into a nightmare.", "Science Fiction", "Fiction grounded in imagined science and technology.", "Steven Spielberg", []string{"Sam Neill", "Laura Dern"}, "http://example.com/jurassic_park.jpg", true},
	{"Star Wars: A New Hope", "Luke Skywalker joins forces to defeat the Galactic Empire.", "Science Fiction", "Fiction grounded in imagined science and technology.", "George Lucas", []string{"Mark Hamill", "Harrison Ford"}, "http://example.com/star_wars.jpg", false},
	{"The Shawshank Redemption", "Two imprisoned men bond over the years, finding solace and redemption.", "Drama", "Character-driven stories of realistic conflict.", "Frank Darabont", []string{"Tim Robbins", "Morgan Freeman"}, "http://example.com/shawshank.jpg", true},
	{"The Matrix", "A computer hacker discovers a simulated reality controlled by machines.", "Science Fiction", "Fiction grounded in imagined science and technology.", "The Wachowskis", []string{"Keanu Reeves", "Laurence Fishburne"}, "http://example.com/matrix.jpg", false},
}

type seedUser struct {
	username  string
	password  string
	email     string
	favorites []string // movie titles
}

var users = []seedUser{
	{"user1", "password1", "1@a.net", []string{"The Dark Knight", "Titanic"}},
	{"user2", "password2", "2@a.net", []string{"The Shawshank Redemption", "The Dark Knight"}},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	for _, m := range movies {
		_, err := pool.Exec(ctx, `
			INSERT INTO movies (title, description, genre_name, genre_description, director_name, actors, image_path, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (title) DO NOTHING
		`, m.title, m.description, m.genre, m.genreDesc, m.director, m.actors, m.imagePath, m.featured)
		if err != nil {
			log.Fatalf("failed to seed movie %q: %v", m.title, err)
		}
	}
	fmt.Printf("seeded %d movies\n", len(movies))

	for _, u := range users {
		hash, err := helpers.HashPassword(u.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = pool.QueryRow(ctx, `
			INSERT INTO users (username, email, password_hash)
			VALUES ($1, $2, $3)
			ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email
			RETURNING id
		`, u.username, u.email, hash).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %q: %v", u.username, err)
		}
		for _, title := range u.favorites {
			if _, err := pool.Exec(ctx, `
				INSERT INTO user_favorites (user_id, movie_id)
				SELECT $1, id FROM movies WHERE title = $2
				ON CONFLICT (user_id, movie_id) DO NOTHING
			`, id, title); err != nil {
				log.Fatalf("failed to seed favorite %q for %q: %v", title, u.username, err)
			}
		}
		fmt.Printf("seeded user: username=%s password=%s\n", u.username, u.password)
	}
}
