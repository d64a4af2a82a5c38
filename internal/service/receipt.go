package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// anonymousContributor is rendered when a record's user can no longer
// be resolved instead of failing the download.
const anonymousContributor = "Anonymous"

// pinned so identical records always render identical bytes; receipts
// deliberately carry no generation timestamp.
var receiptEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// ReceiptService renders a single ledger record into a PDF receipt.
// It only reads; the ledger is never touched.
type ReceiptService struct {
	titheRepo repository.TitheRepository
	userRepo  repository.UserRepository
	appName   string
}

func NewReceiptService(titheRepo repository.TitheRepository, userRepo repository.UserRepository, appName string) *ReceiptService {
	return &ReceiptService{
		titheRepo: titheRepo,
		userRepo:  userRepo,
		appName:   appName,
	}
}

// Render produces the receipt document for one record.
func (s *ReceiptService) Render(recordID string) ([]byte, error) {
	record, err := s.titheRepo.ByID(recordID)
	if err != nil {
		return nil, err
	}

	contributor := anonymousContributor
	user, err := s.userRepo.ByID(record.UserID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to resolve contributor: %w", err)
	}
	if user != nil {
		contributor = user.Username
	}

	return s.render(record, contributor)
}

func (s *ReceiptService) render(record *model.TithingRecord, contributor string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(receiptEpoch)
	pdf.SetModificationDate(receiptEpoch)
	pdf.SetCompression(false)
	pdf.SetTitle("Tithing Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, s.appName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Tithing Receipt", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	s.field(pdf, "Receipt No.", record.ID)
	s.field(pdf, "Contributor", contributor)
	s.field(pdf, "Amount", FormatAmount(record.AmountCents))
	s.field(pdf, "Date", record.Date)

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *ReceiptService) field(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(40, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

// Filename is the download name for a record's receipt.
func (s *ReceiptService) Filename(recordID string) string {
	return fmt.Sprintf("tithing_record_%s.pdf", recordID)
}

// FormatAmount renders integer cents as a dollar amount, grouped per
// English locale conventions.
func FormatAmount(cents int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%.2f", float64(cents)/100)
}
