package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/orbit-api/infrastructure/database/postgres"
	"github.com/vfg2006/orbit-api/internal/domain"
	"github.com/vfg2006/orbit-api/pkg/log"
	"github.com/vfg2006/orbit-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// ErrAlreadySeeded indica que o usuário de demonstração já existe
var ErrAlreadySeeded = errors.New("dados de demonstração já existem")

const (
	DemoEmail    = "demo@orbit.app"
	DemoPassword = "Orbit1234"
)

type Options struct {
	Email    string
	Password string
	Period   utils.Period
}

type Result struct {
	UserID      int
	Clients     int
	Projects    int
	Invoices    int
	TimeEntries int
}

// Dataset é o conjunto de dados de demonstração de um período
type Dataset struct {
	Clients     []domain.Client
	Projects    []domain.Project
	Invoices    []domain.Invoice
	TimeEntries []domain.TimeEntry
	Target      domain.PeriodTarget
}

// Run cria o usuário de demonstração e os dados do período numa única transação
func Run(ctx context.Context, conn *postgres.Connection, opts Options) (*Result, error) {
	if opts.Email == "" {
		opts.Email = DemoEmail
	}
	if opts.Password == "" {
		opts.Password = DemoPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	logger := log.L.WithFields(log.Fields{"user_email": opts.Email, "period": opts.Period.String()})
	logger.Info("Iniciando seed de demonstração")
	startTime := time.Now()

	result := &Result{}
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		userID, err := insertUser(ctx, tx, opts.Email, string(hash))
		if err != nil {
			return err
		}
		result.UserID = userID

		data, err := BuildDataset(userID, opts.Period)
		if err != nil {
			return err
		}

		if result.Clients, err = insertClients(ctx, tx, data.Clients); err != nil {
			return err
		}
		if result.Projects, err = insertProjects(ctx, tx, data.Projects); err != nil {
			return err
		}
		if result.Invoices, err = insertInvoices(ctx, tx, data.Invoices); err != nil {
			return err
		}
		if result.TimeEntries, err = insertTimeEntries(ctx, tx, data.TimeEntries); err != nil {
			return err
		}

		return insertTarget(ctx, tx, data.Target, opts.Period)
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"user_id":      result.UserID,
		"clients":      result.Clients,
		"projects":     result.Projects,
		"invoices":     result.Invoices,
		"time_entries": result.TimeEntries,
		"duration_ms":  time.Since(startTime).Milliseconds(),
	}).Info("Seed concluído")

	return result, nil
}

// BuildDataset monta os dados do período. Em janeiro de 2026 o resultado é 112h
// comprometidas, 87,5h registradas, 8.500 recebidos, 2.500 pendentes e meta de 12.000.
func BuildDataset(userID int, period utils.Period) (*Dataset, error) {
	ids := func(prefix string, n int) ([]string, error) {
		out := make([]string, n)
		for i := range out {
			id, err := utils.GenerateID(prefix)
			if err != nil {
				return nil, err
			}
			out[i] = id
		}
		return out, nil
	}

	clientIDs, err := ids(utils.PrefixClient, 2)
	if err != nil {
		return nil, err
	}
	projectIDs, err := ids(utils.PrefixProject, 3)
	if err != nil {
		return nil, err
	}

	start := period.Start()
	day := func(n int) time.Time {
		d := start.AddDate(0, 0, n-1)
		if last := period.LastDay(); d.After(last) {
			return last
		}
		return d
	}

	data := &Dataset{
		Clients: []domain.Client{
			{ID: clientIDs[0], UserID: userID, Name: "Acme Studio", CompanyName: strPtr("Acme Studio Ltd"), Email: strPtr("billing@acme.test"), Status: domain.ClientStatusActive, Currency: "USD", Color: strPtr("#4f46e5")},
			{ID: clientIDs[1], UserID: userID, Name: "Northwind", Email: strPtr("ap@northwind.test"), Status: domain.ClientStatusActive, Currency: "USD", Color: strPtr("#10b981")},
		},
		Projects: []domain.Project{
			{ID: projectIDs[0], UserID: userID, ClientID: clientIDs[0], Name: "Website redesign", Status: domain.ProjectStatusActive, BillingType: domain.BillingHourly, Rate: 95, Currency: "USD", HoursEstimated: 200, MonthlyCommitmentHours: 60},
			{ID: projectIDs[1], UserID: userID, ClientID: clientIDs[0], Name: "Design system", Status: domain.ProjectStatusActive, BillingType: domain.BillingFixed, Budget: 9000, Currency: "USD", HoursEstimated: 120, MonthlyCommitmentHours: 40},
			{ID: projectIDs[2], UserID: userID, ClientID: clientIDs[1], Name: "Support retainer", Status: domain.ProjectStatusActive, BillingType: domain.BillingRetainer, Rate: 1500, Currency: "USD", MonthlyCommitmentHours: 12},
		},
		Target: domain.PeriodTarget{UserID: userID, Period: period.String(), RevenueTarget: 12000, Currency: "USD"},
	}

	invoices := []struct {
		client, project int
		amount          float64
		status          domain.InvoiceStatus
		issueDay        int
		dueDay          int
		paidDay         int
	}{
		{0, 0, 5000, domain.InvoiceStatusPaid, 2, 12, 10},
		{0, 1, 3500, domain.InvoiceStatusPaid, 5, 20, 19},
		{1, 2, 2500, domain.InvoiceStatusSent, 15, 30, 0},
	}
	for _, row := range invoices {
		id, err := utils.GenerateID(utils.PrefixInvoice)
		if err != nil {
			return nil, err
		}
		inv := domain.Invoice{
			ID:        id,
			UserID:    userID,
			ClientID:  clientIDs[row.client],
			ProjectID: strPtr(projectIDs[row.project]),
			Amount:    row.amount,
			Currency:  "USD",
			Status:    row.status,
			IssueDate: domain.NewDate(day(row.issueDay)),
			DueDate:   domain.NewDate(day(row.dueDay)),
		}
		if row.paidDay > 0 {
			paidAt := day(row.paidDay).Add(14 * time.Hour)
			inv.PaidAt = &paidAt
		}
		data.Invoices = append(data.Invoices, inv)
	}

	// 4h por dia útil; o último dia útil fecha em 3h30
	var workdays []time.Time
	for d := start; d.Before(period.End()); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			workdays = append(workdays, d)
		}
	}
	for i, workday := range workdays {
		id, err := utils.GenerateID(utils.PrefixTimeEntry)
		if err != nil {
			return nil, err
		}

		duration := 4 * time.Hour
		if i == len(workdays)-1 {
			duration = 3*time.Hour + 30*time.Minute
		}
		begin := workday.Add(9 * time.Hour)
		end := begin.Add(duration)

		data.TimeEntries = append(data.TimeEntries, domain.TimeEntry{
			ID:              id,
			UserID:          userID,
			ProjectID:       projectIDs[i%len(projectIDs)],
			Description:     strPtr(fmt.Sprintf("Sessão de trabalho %02d", workday.Day())),
			StartTime:       &begin,
			EndTime:         &end,
			DurationSeconds: int64(duration.Seconds()),
			Billable:        true,
			Date:            domain.NewDate(workday),
		})
	}

	return data, nil
}

func insertUser(ctx context.Context, tx *sql.Tx, email, passwordHash string) (int, error) {
	var userID int
	err := tx.QueryRowContext(ctx, `
		INSERT INTO users (name, lastname, email, password_hash, active, email_verified, role_id, default_currency, monthly_capacity_hours)
		VALUES ($1, $2, $3, $4, TRUE, TRUE, $5, 'USD', 160)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`,
		"Demo", "Freelancer", email, passwordHash, domain.RoleFreelancer,
	).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrAlreadySeeded
	}
	if err != nil {
		return 0, errors.Wrap(err, "erro ao inserir usuário de demonstração")
	}
	return userID, nil
}

func insertClients(ctx context.Context, tx *sql.Tx, clients []domain.Client) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO clients (id, user_id, name, company_name, email, status, currency, color) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar statement para clients")
	}
	defer stmt.Close()

	for i, c := range clients {
		if _, err := stmt.ExecContext(ctx, c.ID, c.UserID, c.Name, c.CompanyName, c.Email, c.Status, c.Currency, c.Color); err != nil {
			return i, errors.Wrapf(err, "erro ao inserir cliente %s", c.Name)
		}
	}
	return len(clients), nil
}

func insertProjects(ctx context.Context, tx *sql.Tx, projects []domain.Project) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO projects (id, user_id, client_id, name, status, billing_type, rate, budget, currency, hours_estimated, monthly_commitment_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar statement para projects")
	}
	defer stmt.Close()

	for i, p := range projects {
		_, err := stmt.ExecContext(ctx, p.ID, p.UserID, p.ClientID, p.Name, p.Status, p.BillingType, p.Rate, p.Budget,
			p.Currency, p.HoursEstimated, p.MonthlyCommitmentHours)
		if err != nil {
			return i, errors.Wrapf(err, "erro ao inserir projeto %s", p.Name)
		}
	}
	return len(projects), nil
}

func insertInvoices(ctx context.Context, tx *sql.Tx, invoices []domain.Invoice) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO invoices (id, user_id, client_id, project_id, invoice_number, amount, currency, status, issue_date, due_date, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar statement para invoices")
	}
	defer stmt.Close()

	for i, inv := range invoices {
		number := fmt.Sprintf("INV-%d-%03d", inv.IssueDate.Year(), i+1)
		_, err := stmt.ExecContext(ctx, inv.ID, inv.UserID, inv.ClientID, inv.ProjectID, number, inv.Amount,
			inv.Currency, inv.Status, inv.IssueDate, inv.DueDate, inv.PaidAt)
		if err != nil {
			return i, errors.Wrapf(err, "erro ao inserir fatura %s", number)
		}
	}
	return len(invoices), nil
}

func insertTimeEntries(ctx context.Context, tx *sql.Tx, entries []domain.TimeEntry) (int, error) {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO time_entries (id, user_id, project_id, description, start_time, end_time, duration_seconds, billable, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar statement para time_entries")
	}
	defer stmt.Close()

	for i, e := range entries {
		_, err := stmt.ExecContext(ctx, e.ID, e.UserID, e.ProjectID, e.Description, e.StartTime, e.EndTime,
			e.DurationSeconds, e.Billable, e.Date)
		if err != nil {
			return i, errors.Wrapf(err, "erro ao inserir registro de tempo de %s", e.Date)
		}
	}
	return len(entries), nil
}

func insertTarget(ctx context.Context, tx *sql.Tx, target domain.PeriodTarget, period utils.Period) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO period_targets (user_id, period, period_start, revenue_target, hours_available, currency)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		target.UserID, target.Period, domain.NewDate(period.Start()), target.RevenueTarget, target.HoursAvailable, target.Currency)
	return errors.Wrap(err, "erro ao inserir meta do período")
}

func strPtr(s string) *string {
	return &s
}
