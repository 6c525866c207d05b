package store

import (
	"fmt"
	"io"
	"sync"

	"github.com/rogersnm/resumecraft/internal/model"
	"go.uber.org/zap"
)

// Storage keys. The document and the template selection are persisted
// independently.
const (
	DataKey     = "resumecraft-data"
	TemplateKey = "resumecraft-template"
)

// Patch carries whole top-level sections to replace. Nil fields are left
// untouched.
type Patch struct {
	PersonalInfo   *model.PersonalInfo
	Summary        *string
	WorkExperience *[]model.WorkExperience
	Education      *[]model.Education
	Skills         *[]string
	Projects       *[]model.Project
}

// Store owns the single in-memory copy of the resume and the selected
// template and mirrors every change to its Backend.
type Store struct {
	backend Backend
	log     *zap.Logger

	mu       sync.RWMutex
	loaded   bool
	doc      model.Resume
	template model.TemplateID
}

func New(backend Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: backend, log: log}
}

// Load reads the durable copy. Anything missing or unreadable falls back to
// the defaults; Load never fails. It is called implicitly on first access.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}

func (s *Store) load() {
	s.doc = s.readDocument()
	s.template = s.readTemplate()
	s.loaded = true
}

func (s *Store) readDocument() model.Resume {
	raw, ok, err := s.backend.Get(DataKey)
	if err != nil {
		s.log.Warn("reading stored document, using default", zap.String("key", DataKey), zap.Error(err))
		return model.Default()
	}
	if !ok {
		return model.Default()
	}
	doc, err := Decode([]byte(raw))
	if err != nil {
		s.log.Warn("stored document unreadable, using default", zap.String("key", DataKey), zap.Error(err))
		return model.Default()
	}
	return doc
}

func (s *Store) readTemplate() model.TemplateID {
	raw, ok, err := s.backend.Get(TemplateKey)
	if err != nil {
		s.log.Warn("reading stored template, using default", zap.String("key", TemplateKey), zap.Error(err))
		return model.DefaultTemplate
	}
	if !ok {
		return model.DefaultTemplate
	}
	id, err := model.ParseTemplate(raw)
	if err != nil {
		s.log.Warn("stored template unusable, using default", zap.String("template", raw), zap.Error(err))
		return model.DefaultTemplate
	}
	return id
}

func (s *Store) ensureLoaded() {
	if !s.loaded {
		s.load()
	}
}

// Document returns a copy of the current document.
func (s *Store) Document() model.Resume {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.doc.Clone()
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return s.doc.Clone()
}

func (s *Store) Template() model.TemplateID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return s.template
}

// Update replaces the sections set in p, persists the full document and
// returns a copy of the result. Persistence failures are logged and
// otherwise ignored: the in-memory document stays authoritative.
func (s *Store) Update(p Patch) model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	doc := s.doc
	if p.PersonalInfo != nil {
		doc.PersonalInfo = *p.PersonalInfo
	}
	if p.Summary != nil {
		doc.Summary = *p.Summary
	}
	if p.WorkExperience != nil {
		doc.WorkExperience = *p.WorkExperience
	}
	if p.Education != nil {
		doc.Education = *p.Education
	}
	if p.Skills != nil {
		doc.Skills = *p.Skills
	}
	if p.Projects != nil {
		doc.Projects = *p.Projects
	}
	s.doc = doc.Clone()
	s.persistDocument()
	return s.doc.Clone()
}

func (s *Store) persistDocument() {
	data, err := encode(s.doc)
	if err != nil {
		s.log.Warn("encoding document", zap.Error(err))
		return
	}
	if err := s.backend.Set(DataKey, string(data)); err != nil {
		s.log.Warn("persisting document failed, keeping in-memory copy", zap.String("key", DataKey), zap.Error(err))
	}
}

// SetTemplate selects a template. Only selectable ids are accepted.
func (s *Store) SetTemplate(id model.TemplateID) error {
	if _, err := model.ParseTemplate(string(id)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	s.template = id
	if err := s.backend.Set(TemplateKey, string(id)); err != nil {
		s.log.Warn("persisting template failed, keeping in-memory copy", zap.String("key", TemplateKey), zap.Error(err))
	}
	return nil
}

// Clear resets the document to the default and erases its durable copy.
// The template selection is kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	s.doc = model.Default()
	if err := s.backend.Remove(DataKey); err != nil {
		s.log.Warn("removing stored document", zap.String("key", DataKey), zap.Error(err))
	}
}

// Import replaces every section with the document read from r. Unlike Load
// it reports malformed input instead of falling back: a schema mismatch or an
// entry the editors would reject leaves the current document unchanged.
// Invalid entries are reported as a *model.ValidationError.
func (s *Store) Import(r io.Reader) (model.Resume, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Resume{}, fmt.Errorf("reading import: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return model.Resume{}, err
	}
	if err := checkImport(&doc); err != nil {
		return model.Resume{}, err
	}
	return s.Update(Patch{
		PersonalInfo:   &doc.PersonalInfo,
		Summary:        &doc.Summary,
		WorkExperience: &doc.WorkExperience,
		Education:      &doc.Education,
		Skills:         &doc.Skills,
		Projects:       &doc.Projects,
	}), nil
}

// Dump writes the current document as indented JSON.
func (s *Store) Dump(w io.Writer) error {
	data, err := encodeIndent(s.Document())
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
