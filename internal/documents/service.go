package documents

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/FabianMondragon08/Checklist/internal/layout"
	"github.com/FabianMondragon08/Checklist/pkg/workflows"
)

var ErrNoSink = errors.New("no artifact sink configured")

type Service interface {
	// RenderInspectionReport and RenderWorkPermit produce the PDF in memory.
	RenderInspectionReport(ctx context.Context, in *Inspection) (*Artifact, error)
	RenderWorkPermit(ctx context.Context, p *WorkPermit) (*Artifact, error)

	// GenerateInspectionReport and GenerateWorkPermit also store the PDF in
	// the configured sink and report its location.
	GenerateInspectionReport(ctx context.Context, in *Inspection) (*Artifact, error)
	GenerateWorkPermit(ctx context.Context, p *WorkPermit) (*Artifact, error)

	ChecklistTemplate() []TemplateItem
}

type documentService struct {
	sink     ArtifactSink
	pdf      *PDFGenerator
	options  Options
	workflow *workflows.StateMachine
	logger   *zap.Logger
}

// NewService wires a render pipeline. sink may be nil when nothing is stored.
func NewService(sink ArtifactSink, pdf *PDFGenerator, options Options, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pdf == nil {
		pdf = NewPDFGenerator(DefaultPDFOptions())
	}
	return &documentService{
		sink:     sink,
		pdf:      pdf,
		options:  options,
		workflow: workflows.NewStateMachine(),
		logger:   logger,
	}
}

func (s *documentService) RenderInspectionReport(ctx context.Context, in *Inspection) (*Artifact, error) {
	return s.inspection(ctx, in, false)
}

func (s *documentService) GenerateInspectionReport(ctx context.Context, in *Inspection) (*Artifact, error) {
	return s.inspection(ctx, in, true)
}

func (s *documentService) RenderWorkPermit(ctx context.Context, p *WorkPermit) (*Artifact, error) {
	return s.permit(ctx, p, false)
}

func (s *documentService) GenerateWorkPermit(ctx context.Context, p *WorkPermit) (*Artifact, error) {
	return s.permit(ctx, p, true)
}

func (s *documentService) ChecklistTemplate() []TemplateItem {
	return ChecklistTemplate()
}

func (s *documentService) inspection(ctx context.Context, in *Inspection, store bool) (*Artifact, error) {
	return s.run(ctx, pass{
		kind:     TypeInspectionReport,
		validate: in.Validate,
		assemble: func() (*layout.Document, error) { return renderInspectionReport(in, s.options) },
		store:    store,
	})
}

func (s *documentService) permit(ctx context.Context, p *WorkPermit, store bool) (*Artifact, error) {
	return s.run(ctx, pass{
		kind:     TypeWorkPermit,
		validate: p.Validate,
		assemble: func() (*layout.Document, error) { return renderWorkPermit(p, s.options) },
		store:    store,
	})
}

type pass struct {
	kind     DocumentType
	validate func() error
	assemble func() (*layout.Document, error)
	store    bool
}

// run drives one record through validation, layout and serialization. A
// failure at any stage leaves nothing in the sink.
func (s *documentService) run(ctx context.Context, p pass) (*Artifact, error) {
	log := s.logger.With(zap.String("document_type", string(p.kind)))
	state := s.workflow.Start()
	fail := func(err error, msg string) (*Artifact, error) {
		state.Fail()
		log.Warn(msg, zap.Error(err))
		return nil, err
	}

	if err := state.Enter(workflows.StateValidating); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return fail(err, "Render cancelled")
	}
	if err := p.validate(); err != nil {
		return fail(err, "Record rejected")
	}

	if err := state.Enter(workflows.StateRendering); err != nil {
		return nil, err
	}
	doc, err := p.assemble()
	if err != nil {
		return fail(err, "Layout failed")
	}

	if err := state.Enter(workflows.StateSerializing); err != nil {
		return nil, err
	}
	data, err := s.pdf.Serialize(doc)
	if err != nil {
		return fail(err, "Serialization failed")
	}

	artifact := &Artifact{
		Name:         doc.Name,
		DocumentType: p.kind,
		Pages:        doc.PageCount(),
		Size:         int64(len(data)),
		Data:         data,
	}

	if p.store {
		if s.sink == nil {
			return fail(&SerializationError{Artifact: doc.Name, Cause: ErrNoSink}, "Store failed")
		}
		location, err := s.sink.Put(ctx, doc.Name, data)
		if err != nil {
			return fail(&SerializationError{Artifact: doc.Name, Cause: err}, "Store failed")
		}
		artifact.Location = location
	}

	if err := state.Enter(workflows.StateDone); err != nil {
		return nil, err
	}
	log.Info("Document rendered",
		zap.String("artifact", artifact.Name),
		zap.Int("pages", artifact.Pages),
		zap.Int64("bytes", artifact.Size),
		zap.String("location", artifact.Location),
	)
	return artifact, nil
}
