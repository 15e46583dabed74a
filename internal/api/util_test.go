package api

import (
	"strconv"

	"github.com/vytor/lexiflash/internal/models"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func texts(words []models.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
