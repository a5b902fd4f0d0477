package certificate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-citizen/internal/config"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Issuer renders the completion artifact for an approved application.
// The workflow engine calls Issue synchronously on terminal success; a
// failure here never rolls back the Completed status.
type Issuer interface {
	Issue(ctx context.Context, appID, applicantName, nic, serviceType string) (string, error)
	FilePath(appID string) string
}

type IssuerImpl struct {
	Dir    string
	Logger *zap.Logger
}

func NewIssuer(cfg *config.Config, logger *zap.Logger) (Issuer, error) {
	if err := os.MkdirAll(cfg.CertPath, 0o755); err != nil {
		return nil, fmt.Errorf("create certificate directory: %w", err)
	}
	return &IssuerImpl{Dir: cfg.CertPath, Logger: logger}, nil
}

func (s *IssuerImpl) FilePath(appID string) string {
	return filepath.Join(s.Dir, appID+".pdf")
}

// Issue writes <appID>.pdf and returns the certificate serial.
func (s *IssuerImpl) Issue(ctx context.Context, appID, applicantName, nic, serviceType string) (string, error) {
	serial := uuid.NewString()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	width, height := pdf.GetPageSize()

	// Border
	pdf.SetDrawColor(0, 0, 139)
	pdf.SetLineWidth(5)
	pdf.Rect(30, 30, width-60, height-60, "D")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(0, 90)
	pdf.CellFormat(width, 28, "DEMOCRATIC SOCIALIST REPUBLIC OF SRI LANKA", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 139)
	pdf.SetXY(0, 130)
	pdf.CellFormat(width, 22, "OFFICIAL DIGITAL CERTIFICATE", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(0, 170)
	pdf.CellFormat(width, 16, "This is to certify that the following application has been approved.", "", 1, "C", false, 0, "")

	rows := []struct {
		label string
		value string
	}{
		{"Certificate ID:", appID},
		{"Serial:", serial},
		{"Service Type:", serviceType},
		{"Issued To:", applicantName},
		{"NIC Number:", nic},
		{"Date of Issue:", time.Now().Format("2006-01-02 15:04:05")},
	}
	y := 240.0
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(100, y, row.label)
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(250, y, row.value)
		y += 30
	}

	pdf.Line(100, height-150, 300, height-150)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(100, height-135, "Digitally Signed by Divisional Secretary")

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetXY(0, height-80)
	pdf.CellFormat(width, 14, "This is a computer-generated document. No signature required.", "", 1, "C", false, 0, "")

	path := s.FilePath(appID)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("render certificate %s: %w", appID, err)
	}

	s.Logger.Info("certificate issued",
		zap.String("application_id", appID),
		zap.String("serial", serial),
		zap.String("path", path))

	return serial, nil
}
