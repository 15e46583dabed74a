package services

import (
	"context"

	"github.com/vytor/lexiflash/internal/errors"
	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/repository"
)

// DictionaryService handles dictionaries and word sets
type DictionaryService interface {
	CreateDictionary(ctx context.Context, in CreateDictionaryInput) (*models.Dictionary, error)
	GetDictionary(ctx context.Context, id int64) (*models.Dictionary, error)
	ListDictionaries(ctx context.Context) ([]models.Dictionary, error)
	CreateSet(ctx context.Context, dictionaryID int64, in CreateSetInput) (*models.WordSet, error)
	ListSets(ctx context.Context, dictionaryID int64) ([]models.WordSet, error)
	AddWordToSet(ctx context.Context, setID, wordID int64) error
}

type dictionaryService struct {
	dicts repository.DictionaryRepository
	words repository.WordRepository
}

// NewDictionaryService creates a new DictionaryService
func NewDictionaryService(dicts repository.DictionaryRepository, words repository.WordRepository) DictionaryService {
	return &dictionaryService{dicts: dicts, words: words}
}

func (s *dictionaryService) CreateDictionary(ctx context.Context, in CreateDictionaryInput) (*models.Dictionary, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating dictionary: name=%s, language=%s", in.Name, in.Language)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	d := models.Dictionary{Name: in.Name, Language: in.Language}
	id, err := s.dicts.Insert(ctx, d)
	if err != nil {
		log.Error("failed to insert dictionary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	created, err := s.dicts.Get(ctx, id)
	if err != nil || created == nil {
		log.Error("failed to reload dictionary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return created, nil
}

func (s *dictionaryService) ListDictionaries(ctx context.Context) ([]models.Dictionary, error) {
	dicts, err := s.dicts.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list dictionaries: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return dicts, nil
}

func (s *dictionaryService) GetDictionary(ctx context.Context, id int64) (*models.Dictionary, error) {
	return s.requireDictionary(ctx, id)
}

func (s *dictionaryService) requireDictionary(ctx context.Context, id int64) (*models.Dictionary, error) {
	d, err := s.dicts.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get dictionary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError("dictionary", id)
	}
	return d, nil
}

func (s *dictionaryService) CreateSet(ctx context.Context, dictionaryID int64, in CreateSetInput) (*models.WordSet, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating word set: dictionary_id=%d, name=%s", dictionaryID, in.Name)

	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.requireDictionary(ctx, dictionaryID); err != nil {
		return nil, err
	}

	id, err := s.dicts.InsertSet(ctx, models.WordSet{DictionaryID: dictionaryID, Name: in.Name})
	if err != nil {
		log.Error("failed to insert word set: %v", err)
		return nil, errors.NewInternalError(err)
	}
	set, err := s.dicts.GetSet(ctx, id)
	if err != nil || set == nil {
		log.Error("failed to reload word set: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return set, nil
}

func (s *dictionaryService) ListSets(ctx context.Context, dictionaryID int64) ([]models.WordSet, error) {
	if _, err := s.requireDictionary(ctx, dictionaryID); err != nil {
		return nil, err
	}
	sets, err := s.dicts.ListSets(ctx, dictionaryID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list word sets: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return sets, nil
}

// AddWordToSet links a word to a set of the same dictionary. Adding a word
// twice is not an error.
func (s *dictionaryService) AddWordToSet(ctx context.Context, setID, wordID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("adding word to set: set_id=%d, word_id=%d", setID, wordID)

	set, err := s.dicts.GetSet(ctx, setID)
	if err != nil {
		log.Error("failed to get word set: %v", err)
		return errors.NewInternalError(err)
	}
	if set == nil {
		return errors.NewNotFoundError("word set", setID)
	}

	word, err := s.words.Get(ctx, wordID)
	if err != nil {
		log.Error("failed to get word: %v", err)
		return errors.NewInternalError(err)
	}
	if word == nil {
		return errors.NewNotFoundError("word", wordID)
	}
	if word.DictionaryID != set.DictionaryID {
		return errors.NewValidationError("word_id", "word belongs to another dictionary")
	}

	if err := s.words.AddToSet(ctx, setID, wordID); err != nil {
		log.Error("failed to add word to set: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
