package server

import (
	"log/slog"

	contactspb "github.com/cardvault/cardvault/gen/proto/contacts/v1"
	"github.com/cardvault/cardvault/internal/contacts"
	"github.com/cardvault/cardvault/internal/dedupe"
	"github.com/cardvault/cardvault/internal/export"
	"github.com/cardvault/cardvault/internal/extract"
	scan "github.com/cardvault/cardvault/internal/pipeline/scan"
	"github.com/cardvault/cardvault/internal/repository"
)

// ContactsService implements contacts.v1.ContactsService.
type ContactsService struct {
	contactspb.UnimplementedContactsServiceServer
	contactRepo repository.ContactRepository
	jobsRepo    repository.ScanJobRepository
	pipeline    *scan.Pipeline
	extractor   *extract.Extractor
	matcher     *dedupe.Matcher
	importer    *contacts.Importer
	exporter    *export.Service
	logger      *slog.Logger
}

func NewContactsService(
	contactRepo repository.ContactRepository,
	jobsRepo repository.ScanJobRepository,
	pipeline *scan.Pipeline,
	extractor *extract.Extractor,
	matcher *dedupe.Matcher,
	importer *contacts.Importer,
	exporter *export.Service,
	logger *slog.Logger,
) *ContactsService {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		extractor = extract.NewExtractor(extract.DefaultConfig())
	}
	if matcher == nil {
		matcher = dedupe.NewMatcher(dedupe.DefaultConfig())
	}
	return &ContactsService{
		contactRepo: contactRepo,
		jobsRepo:    jobsRepo,
		pipeline:    pipeline,
		extractor:   extractor,
		matcher:     matcher,
		importer:    importer,
		exporter:    exporter,
		logger:      logger,
	}
}
