package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/internal/domain"
)

const invoicesTable = "invoices"

var invoiceColumns = []string{
	"id", "user_id", "client_id", "project_id", "invoice_number", "amount", "currency", "status",
	"issue_date", "due_date", "paid_at", "pdf_url", "created_at", "updated_at",
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) error
	UpdateStatus(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, userID int, invoiceID string) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error)
	Totals(ctx context.Context, userID int) (domain.InvoiceTotals, error)
	Delete(ctx context.Context, userID int, invoiceID string) (bool, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{conn: conn}
}

// Create gera o número sequencial INV-YYYY-NNN do usuário e insere a fatura na mesma transação.
// O advisory lock por usuário serializa criações concorrentes.
func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", inv.UserID); err != nil {
			return errors.Wrap(err, "erro ao obter lock de numeração")
		}

		number, err := nextInvoiceNumber(ctx, tx, inv.UserID, inv.IssueDate.Year())
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number

		query, args, err := psql.
			Insert(invoicesTable).
			Columns("id", "user_id", "client_id", "project_id", "invoice_number", "amount", "currency", "status",
				"issue_date", "due_date", "pdf_url").
			Values(inv.ID, inv.UserID, inv.ClientID, inv.ProjectID, inv.InvoiceNumber, inv.Amount, inv.Currency, inv.Status,
				inv.IssueDate, inv.DueDate, inv.PdfURL).
			Suffix("RETURNING created_at, updated_at").
			ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx, query, args...).Scan(&inv.CreatedAt, &inv.UpdatedAt)
		return errors.Wrap(err, "erro ao inserir fatura")
	})
}

func nextInvoiceNumber(ctx context.Context, q postgres.Queryer, userID, year int) (string, error) {
	prefix := fmt.Sprintf("INV-%d-", year)

	query, args, err := psql.
		Select(fmt.Sprintf("COALESCE(MAX(CAST(SUBSTRING(invoice_number FROM %d) AS INTEGER)), 0)", len(prefix)+1)).
		From(invoicesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Like{"invoice_number": prefix + "%"}).
		ToSql()
	if err != nil {
		return "", err
	}

	var last int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
		return "", errors.Wrap(err, "erro ao calcular número da fatura")
	}

	return fmt.Sprintf("%s%03d", prefix, last+1), nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(invoicesTable).
		Set("project_id", inv.ProjectID).
		Set("amount", inv.Amount).
		Set("currency", inv.Currency).
		Set("issue_date", inv.IssueDate).
		Set("due_date", inv.DueDate).
		Set("pdf_url", inv.PdfURL).
		Set("updated_at", inv.UpdatedAt).
		Where(squirrel.Eq{"id": inv.ID, "user_id": inv.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return errors.Wrapf(err, "erro ao atualizar fatura %s", inv.ID)
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update(invoicesTable).
		Set("status", inv.Status).
		Set("paid_at", inv.PaidAt).
		Set("updated_at", inv.UpdatedAt).
		Where(squirrel.Eq{"id": inv.ID, "user_id": inv.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return errors.Wrapf(err, "erro ao atualizar status da fatura %s", inv.ID)
}

func (r *invoiceRepository) GetByID(ctx context.Context, userID int, invoiceID string) (*domain.Invoice, error) {
	query, args, err := psql.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"id": invoiceID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	inv, err := scanInvoice(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar fatura")
	}

	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	builder := psql.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("issue_date DESC", "invoice_number DESC")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		builder = builder.Where("status = ANY(?)", pq.Array(statuses))
	}
	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.ProjectID != nil {
		builder = builder.Where(squirrel.Eq{"project_id": *filter.ProjectID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar faturas")
	}
	defer rows.Close()

	invoices := []*domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *invoiceRepository) Totals(ctx context.Context, userID int) (domain.InvoiceTotals, error) {
	query, args, err := psql.
		Select(
			"COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)",
			"COALESCE(SUM(amount) FILTER (WHERE status = 'sent'), 0)",
			"COALESCE(SUM(amount) FILTER (WHERE status = 'overdue'), 0)",
		).
		From(invoicesTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.InvoiceTotals{}, err
	}

	var totals domain.InvoiceTotals
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Paid, &totals.Pending, &totals.Overdue); err != nil {
		return domain.InvoiceTotals{}, errors.Wrap(err, "erro ao totalizar faturas")
	}

	return totals, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, userID int, invoiceID string) (bool, error) {
	query, args, err := psql.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": invoiceID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover fatura")
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

// MarkOverdue move para overdue as faturas enviadas com vencimento anterior a asOf
func (r *invoiceRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	query, args, err := psql.
		Update(invoicesTable).
		Set("status", domain.InvoiceStatusOverdue).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"status": domain.InvoiceStatusSent}).
		Where(squirrel.Lt{"due_date": domain.NewDate(asOf)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao marcar faturas vencidas")
	}

	return res.RowsAffected()
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := row.Scan(
		&inv.ID, &inv.UserID, &inv.ClientID, &inv.ProjectID, &inv.InvoiceNumber, &inv.Amount, &inv.Currency, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.PaidAt, &inv.PdfURL, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}
