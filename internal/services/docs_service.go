package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"slift/internal/domain/models"
	"slift/internal/ledger"
	"slift/internal/utils"
)

// DocsService renders the printable balance statement per staff member.
type DocsService struct {
	Balance   BalanceService
	RequestID string
	// Loader overrides data access in tests.
	Loader func(staffID string, win ledger.Window) (statementDocData, error)
}

type statementDocData struct {
	Staff     models.Staff
	Statement ledger.Statement
	Window    ledger.Window
}

// GenerateStatement builds the PDF for one staff member's balance, returning
// the bytes and a suggested filename.
func (s DocsService) GenerateStatement(staffID string, win ledger.Window) ([]byte, string, error) {
	data, err := s.loadStatementDocData(staffID, win)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_statement", "staff_id="+staffID)
	return buildStatementPDF(data)
}

func (s DocsService) loadStatementDocData(staffID string, win ledger.Window) (statementDocData, error) {
	if s.Loader != nil {
		return s.Loader(staffID, win)
	}

	var out statementDocData
	staff, err := s.Balance.StaffRepo.GetByID(staffID)
	if err != nil {
		return out, err
	}
	st, err := s.Balance.StatementFor(staffID, win)
	if err != nil {
		return out, err
	}
	out.Staff = staff
	out.Statement = st
	out.Window = win
	return out, nil
}

func buildStatementPDF(d statementDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // accented Portuguese text
	pdf.SetTitle("Extrato de Saldo", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "EXTRATO DE SALDO")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	period := "todo o período"
	if !d.Window.IsZero() {
		period = fmt.Sprintf("%s a %s", safeText(d.Window.From, "início"), safeText(d.Window.To, "hoje"))
	}
	lines := []string{
		fmt.Sprintf("Colaborador : %s", safeText(d.Staff.Name, "-")),
		fmt.Sprintf("Função      : %s", d.Staff.Role.Label()),
		fmt.Sprintf("Período     : %s", period),
		fmt.Sprintf("Emitido em  : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Ganhos por viagem:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Statement.Trips) == 0 {
		pdf.Cell(0, 6, tr("Nenhuma viagem finalizada no período."))
		pdf.Ln(7)
	}
	for _, line := range d.Statement.Trips {
		desc := fmt.Sprintf("%s  %s -> %s  (%s)  %s",
			line.Trip.Date,
			safeText(line.Trip.Origin, "-"),
			safeText(line.Trip.Destination, "-"),
			line.Trip.JobType.Label(),
			formatReal(line.Amount),
		)
		pdf.MultiCell(0, 6, tr(desc), "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Pagamentos:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Statement.Payments) == 0 {
		pdf.Cell(0, 6, "Nenhum pagamento registrado.")
		pdf.Ln(7)
	}
	for _, p := range d.Statement.Payments {
		desc := fmt.Sprintf("%s  %s", p.Date, formatReal(p.Amount))
		if strings.TrimSpace(p.Notes) != "" {
			desc += "  (" + strings.TrimSpace(p.Notes) + ")"
		}
		pdf.MultiCell(0, 6, tr(desc), "", "", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Total ganho : "+formatReal(d.Statement.Earned))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Total pago  : "+formatReal(d.Statement.Paid))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Saldo       : "+formatReal(d.Statement.Balance))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Ganhos de motorista são recalculados com a taxa por km vigente; bônus de ajudante com a configuração vigente."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("EXTRATO_%s.pdf", safeFilenamePart(d.Staff.Name))
	return buf.Bytes(), filename, nil
}

func safeText(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

// formatReal renders a BRL amount: R$ 1.234,56.
func formatReal(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(v*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	s := fmt.Sprintf("%d", whole)
	var out []byte
	n := len(s)
	for i := 0; i < n; i++ {
		out = append(out, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, '.')
		}
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, string(out), frac)
}
