// Command seed loads the bootstrap name set into the store: 40 male,
// 40 female and 31 neutral names. Inserts run sequentially with no
// cross-record atomicity; a failure partway through leaves the prior
// inserts committed, which is acceptable for a bootstrap load.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/erevald/fantasy-names/internal/config"
	"github.com/erevald/fantasy-names/internal/database"
	"github.com/erevald/fantasy-names/internal/model"
	"github.com/erevald/fantasy-names/internal/repository"
)

type seedName struct {
	name   string
	gender string
	origin string
}

var seedNames = []seedName{
	// male (40)
	{"Aldric", "male", "fantasy"}, {"Baldur", "male", "norse"},
	{"Cedric", "male", "fantasy"}, {"Dorian", "male", "fantasy"},
	{"Eldon", "male", "fantasy"}, {"Fenwick", "male", "fantasy"},
	{"Gareth", "male", "fantasy"}, {"Haldor", "male", "norse"},
	{"Ivar", "male", "norse"}, {"Jorund", "male", "norse"},
	{"Kaelthas", "male", "elvish"}, {"Lorcan", "male", "fantasy"},
	{"Magnus", "male", "norse"}, {"Nyle", "male", "fantasy"},
	{"Orin", "male", "dwarvish"}, {"Percival", "male", "fantasy"},
	{"Quillon", "male", "fantasy"}, {"Ragnar", "male", "norse"},
	{"Soren", "male", "norse"}, {"Theron", "male", "elvish"},
	{"Ulric", "male", "fantasy"}, {"Varis", "male", "elvish"},
	{"Wulfric", "male", "fantasy"}, {"Xander", "male", "fantasy"},
	{"Yorick", "male", "fantasy"}, {"Zephyrus", "male", "fantasy"},
	{"Brom", "male", "dwarvish"}, {"Durnik", "male", "dwarvish"},
	{"Erevan", "male", "elvish"}, {"Faelar", "male", "elvish"},
	{"Grimbold", "male", "dwarvish"}, {"Hadrian", "male", "fantasy"},
	{"Ilmarin", "male", "elvish"}, {"Keldor", "male", "fantasy"},
	{"Lucan", "male", "fantasy"}, {"Merek", "male", "fantasy"},
	{"Norrin", "male", "fantasy"}, {"Osric", "male", "fantasy"},
	{"Peregrin", "male", "fantasy"}, {"Thorin", "male", "dwarvish"},

	// female (40)
	{"Aelindra", "female", "elvish"}, {"Briseis", "female", "fantasy"},
	{"Celethiel", "female", "elvish"}, {"Delphine", "female", "fantasy"},
	{"Elowen", "female", "fantasy"}, {"Faelivrin", "female", "elvish"},
	{"Gwyneth", "female", "fantasy"}, {"Helia", "female", "fantasy"},
	{"Isolde", "female", "fantasy"}, {"Jessamine", "female", "fantasy"},
	{"Kaida", "female", "fantasy"}, {"Lirael", "female", "elvish"},
	{"Morwenna", "female", "fantasy"}, {"Nimue", "female", "fantasy"},
	{"Ophira", "female", "fantasy"}, {"Perrine", "female", "fantasy"},
	{"Quinlynn", "female", "fantasy"}, {"Rhiannon", "female", "fantasy"},
	{"Seraphine", "female", "fantasy"}, {"Thalia", "female", "fantasy"},
	{"Undine", "female", "fantasy"}, {"Vespera", "female", "fantasy"},
	{"Wrenna", "female", "fantasy"}, {"Xylia", "female", "fantasy"},
	{"Ysolde", "female", "fantasy"}, {"Zinnia", "female", "fantasy"},
	{"Arwenia", "female", "elvish"}, {"Brunhilde", "female", "norse"},
	{"Caelindra", "female", "elvish"}, {"Dagny", "female", "norse"},
	{"Eirlys", "female", "fantasy"}, {"Freydis", "female", "norse"},
	{"Galadwen", "female", "elvish"}, {"Hilda", "female", "norse"},
	{"Ingrid", "female", "norse"}, {"Katla", "female", "norse"},
	{"Liadan", "female", "fantasy"}, {"Maeven", "female", "fantasy"},
	{"Nessarie", "female", "elvish"}, {"Sigrun", "female", "norse"},

	// neutral (31)
	{"Ash", "neutral", "fantasy"}, {"Briar", "neutral", "fantasy"},
	{"Cypress", "neutral", "fantasy"}, {"Dale", "neutral", "fantasy"},
	{"Ember", "neutral", "fantasy"}, {"Fen", "neutral", "fantasy"},
	{"Gale", "neutral", "fantasy"}, {"Hollis", "neutral", "fantasy"},
	{"Indigo", "neutral", "fantasy"}, {"Juniper", "neutral", "fantasy"},
	{"Kestrel", "neutral", "fantasy"}, {"Lark", "neutral", "fantasy"},
	{"Meridian", "neutral", "fantasy"}, {"North", "neutral", "fantasy"},
	{"Onyx", "neutral", "fantasy"}, {"Pax", "neutral", "fantasy"},
	{"Quill", "neutral", "fantasy"}, {"Raven", "neutral", "fantasy"},
	{"Sage", "neutral", "fantasy"}, {"Tamsin", "neutral", "fantasy"},
	{"Umber", "neutral", "fantasy"}, {"Vale", "neutral", "fantasy"},
	{"Winter", "neutral", "fantasy"}, {"Wren", "neutral", "fantasy"},
	{"Yarrow", "neutral", "fantasy"}, {"Zephyr", "neutral", "fantasy"},
	{"Aspen", "neutral", "fantasy"}, {"Rowan", "neutral", "fantasy"},
	{"Sorrel", "neutral", "fantasy"}, {"Tarian", "neutral", "fantasy"},
	{"Vesper", "neutral", "fantasy"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var pool database.Pool
	err := pool.Open(database.Config{
		Driver:          "mysql",
		DSN:             database.MySQLDSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		AcquireTimeout:  cfg.DBAcquireTimeout,
	})
	if err != nil {
		log.Fatalf("open pool: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.EnsureSchema(ctx, &pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	repo := repository.NewNameRepo(&pool)
	for i, s := range seedNames {
		origin := s.origin
		rec := model.NameRecord{Name: s.name, Gender: s.gender, Origin: &origin}
		if err := repo.Add(ctx, &rec); err != nil {
			log.Fatalf("seed aborted at %d/%d (%s): %v", i+1, len(seedNames), s.name, err)
		}
	}
	log.Printf("seeded %d names", len(seedNames))
}
