package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"Teller/internal/repo"
)

// StatementService рендерит одностраничную PDF-выписку по счёту за период.
// PDF собирается вручную из минимального набора объектов: для текстовой
// выписки этого достаточно, а внешней PDF-зависимости у проекта нет.
type StatementService struct {
	accounts     repo.AccountRepository
	transactions *TransactionService
}

// NewStatementService конструктор.
func NewStatementService(accounts repo.AccountRepository, transactions *TransactionService) *StatementService {
	return &StatementService{accounts: accounts, transactions: transactions}
}

// Render возвращает PDF с операциями счёта за период [debut, fin].
func (s *StatementService) Render(ctx context.Context, number, debut, fin string) ([]byte, error) {
	account, err := s.accounts.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.History(ctx, number, debut, fin)
	if err != nil {
		return nil, err
	}

	lines := []string{
		"RELEVE DE COMPTE",
		"",
		"Compte:  " + account.Number,
	}
	if account.Client != nil {
		lines = append(lines, "Titulaire: "+account.Client.FullName())
	}
	lines = append(lines,
		fmt.Sprintf("Periode: %s - %s", debut, fin),
		fmt.Sprintf("Solde actuel: %.2f", account.Balance),
		"",
		"Date                 Type               Montant      Solde",
	)
	for _, tx := range txs {
		lines = append(lines, fmt.Sprintf("%-20s %-18s %10.2f %10.2f",
			tx.CreatedAt.Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.BalanceAfter))
	}
	if len(txs) == 0 {
		lines = append(lines, "Aucune operation sur la periode.")
	}

	return buildPDF(lines), nil
}

// buildPDF собирает валидный одностраничный PDF с моноширинным текстом.
func buildPDF(lines []string) []byte {
	var content bytes.Buffer
	content.WriteString("BT\n/F1 10 Tf\n50 780 Td\n12 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj\nT*\n", escapePDFText(line))
	}
	content.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// escapePDFText экранирует спецсимволы текстовых строк PDF.
func escapePDFText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return r.Replace(s)
}
