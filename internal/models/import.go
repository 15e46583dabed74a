package models

// ImportReport summarizes one file import.
type ImportReport struct {
	DictionaryID int64    `json:"dictionary_id"`
	Imported     int      `json:"imported"`
	Skipped      int      `json:"skipped"`
	Errors       []string `json:"errors,omitempty"`
}
