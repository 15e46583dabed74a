package api

import (
	"context"
	"time"

	"github.com/vytor/lexiflash/internal/jobs"
	"github.com/vytor/lexiflash/internal/services"
)

const defaultMaxUploadBytes = 10 << 20

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	Dictionaries services.DictionaryService
	Words        services.WordService
	Stats        services.StatsService
	Jobs         jobs.JobQueue
	DB           Pinger

	// UploadDir holds imported files until their job runs. Empty means the
	// OS temp dir.
	UploadDir      string
	MaxUploadBytes int64

	// AllowedOrigins enables CORS for browser clients. Empty disables it.
	AllowedOrigins []string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) maxUploadBytes() int64 {
	if s.MaxUploadBytes > 0 {
		return s.MaxUploadBytes
	}
	return defaultMaxUploadBytes
}
