package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	objectid "github.com/venlit/go-objectid"
	_ "modernc.org/sqlite"
)

type Record struct {
	ID       objectid.ObjectID
	Name     string
	ParentID objectid.NullObjectID // optional parent reference
}

func main() {
	root, err := objectid.Generate()
	if err != nil {
		log.Fatal(err)
	}
	child, err := objectid.Generate()
	if err != nil {
		log.Fatal(err)
	}

	records := []Record{
		{ID: root, Name: "root"},
		{ID: child, Name: "child", ParentID: objectid.NullObjectID{ID: root, Valid: true}},
	}

	// JSON: absent parents marshal as null.
	for _, r := range records {
		data, _ := json.Marshal(r)
		fmt.Println(string(data))
	}

	if err := databaseExample(records); err != nil {
		log.Fatal(err)
	}
}

func databaseExample(records []Record) error {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE records (
			id BLOB PRIMARY KEY,
			name TEXT NOT NULL,
			parent_id BLOB
		)
	`)
	if err != nil {
		return err
	}

	for _, r := range records {
		if _, err := db.Exec(
			"INSERT INTO records (id, name, parent_id) VALUES (?, ?, ?)",
			r.ID, r.Name, r.ParentID,
		); err != nil {
			return err
		}
	}

	rows, err := db.Query("SELECT id, name, parent_id FROM records ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.ParentID); err != nil {
			return err
		}
		if r.ParentID.Valid {
			fmt.Printf("%s (id %s, parent %s)\n", r.Name, r.ID, r.ParentID.ID)
		} else {
			fmt.Printf("%s (id %s, parent NULL)\n", r.Name, r.ID)
		}
	}
	return rows.Err()
}
