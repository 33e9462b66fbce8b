package reporting

import (
	"context"
	"net/mail"
	"strings"

	"github.com/vfg2006/cet-calculator-api/infrastructure/mailer"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/comparing"
	"github.com/vfg2006/cet-calculator-api/internal/usecases/settings"
	"github.com/vfg2006/cet-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/cet-calculator-api/pkg/log"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

const (
	fileBaseName = "comparacao-taxas"
	shareSubject = "Comparação de Taxas"
)

var contentTypes = map[Format]string{
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
	FormatText: "text/plain; charset=utf-8",
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", NewReportError(ErrUnsupportedFormat, apiErrors.ErrUnsupportedExport, s)
	}
	return f, nil
}

// FileName retorna o nome do arquivo baixado, com o ID quando o relatório vem do histórico
func FileName(id string, format Format) string {
	ext := string(format)
	if format == FormatText {
		ext = "txt"
	}
	if id == "" {
		return fileBaseName + "." + ext
	}
	return fileBaseName + "-" + id + "." + ext
}

// File é um relatório pronto para download
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

type Reporter interface {
	ExportResult(ctx context.Context, userID int, req domain.ComparisonRequest, format Format) (*File, error)
	ExportHistory(ctx context.Context, userID int, historyID string, format Format) (*File, error)
	Share(ctx context.Context, userID int, historyID string, to string) error
}

type Service struct {
	historian  comparing.Historian
	settings   settings.Manager
	calculator calculating.Calculator
	mailer     mailer.Mailer
}

func NewService(
	historian comparing.Historian,
	settingsManager settings.Manager,
	calculator calculating.Calculator,
	m mailer.Mailer,
) Reporter {
	return &Service{
		historian:  historian,
		settings:   settingsManager,
		calculator: calculator,
		mailer:     m,
	}
}

// ExportResult calcula e exporta uma comparação avulsa. userID 0 usa as preferências padrão.
func (s *Service) ExportResult(ctx context.Context, userID int, req domain.ComparisonRequest, format Format) (*File, error) {
	result := s.calculator.Compare(req.CurrentRates, req.NewRates, req.Volumes)
	return s.render(ctx, userID, Report{Result: result}, format)
}

func (s *Service) ExportHistory(ctx context.Context, userID int, historyID string, format Format) (*File, error) {
	entry, err := s.historian.Get(ctx, userID, historyID)
	if err != nil {
		return nil, err
	}

	return s.render(ctx, userID, ReportFromHistory(entry), format)
}

// Share envia o resumo de uma comparação do histórico por e-mail
func (s *Service) Share(ctx context.Context, userID int, historyID string, to string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(to))
	if err != nil {
		return NewReportError(ErrInvalidRecipient, apiErrors.ErrInvalidFormat, to)
	}

	entry, err := s.historian.Get(ctx, userID, historyID)
	if err != nil {
		return err
	}

	formatter := NewFormatter(s.userSettings(ctx, userID))
	err = s.mailer.Send(ctx, mailer.Message{
		To:      addr.Address,
		Subject: shareSubject,
		Text:    ShareText(&entry.Result, formatter),
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("history_id", historyID).Error("Erro ao compartilhar comparação")
		return NewReportError(ErrSendFailed, apiErrors.ErrExternalService, err.Error())
	}

	log.ForContext(ctx).WithField("history_id", historyID).Info("Comparação compartilhada por e-mail")
	return nil
}

func (s *Service) render(ctx context.Context, userID int, report Report, format Format) (*File, error) {
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, NewReportError(ErrUnsupportedFormat, apiErrors.ErrUnsupportedExport, string(format))
	}

	formatter := NewFormatter(s.userSettings(ctx, userID))

	var (
		content []byte
		err     error
	)
	switch format {
	case FormatXLSX:
		content, err = Spreadsheet(report)
	case FormatPDF:
		content, err = PDF(report, formatter)
	case FormatText:
		content = []byte(ShareText(report.Result, formatter))
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao gerar relatório %s", format)
		return nil, NewReportError(ErrRenderFailed, apiErrors.ErrInternalServer, err.Error())
	}

	return &File{
		Name:        FileName(report.ID, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// userSettings nunca falha: sem usuário ou com erro nas preferências usa o padrão
func (s *Service) userSettings(ctx context.Context, userID int) *domain.Settings {
	if userID == 0 {
		return domain.DefaultSettings()
	}

	st, err := s.settings.Get(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível carregar as preferências, usando padrão")
		return domain.DefaultSettings()
	}
	return st
}
