package models

import "time"

type Dictionary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

type WordSet struct {
	ID           int64     `json:"id"`
	DictionaryID int64     `json:"dictionary_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
