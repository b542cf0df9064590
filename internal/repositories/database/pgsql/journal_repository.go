package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portsrepo "github.com/jdvries-dev/boekhoud_app/internal/core/ports/repositories"
)

// PgxJournalRepository persists journal entries and serves the read side of
// the reporting core.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.JournalRepository    = (*PgxJournalRepository)(nil)
	_ portsrepo.LedgerReadRepository = (*PgxJournalRepository)(nil)
)

const entryColumns = `entry_id, company_id, entry_date, status, description, memoriaal_type, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.CompanyID,
		&e.EntryDate,
		&e.Status,
		&e.Description,
		&e.MemoriaalType,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveEntry persists a new journal entry together with its lines, atomically.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.CompanyID,
		entry.EntryDate,
		entry.Status,
		entry.Description,
		entry.MemoriaalType,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", entry.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, debit, credit, description, line_order, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for i, line := range lines {
		_, err = tx.Exec(ctx, lineQuery,
			line.LineID,
			line.EntryID,
			line.AccountID,
			line.Debit,
			line.Credit,
			line.Description,
			i,
			line.CreatedAt,
			line.CreatedBy,
			line.LastUpdatedAt,
			line.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save journal line %s: %w", line.LineID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.EntryWithLines, error) {
	entryQuery := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE company_id = $1 AND entry_id = $2;
	`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, entryQuery, companyID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("error finding journal entry %s: %w", entryID, err)
	}

	lines, err := r.findLinesByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	return &domain.EntryWithLines{Entry: entry, Lines: lines[entryID]}, nil
}

// FinalizeEntry transitions a draft entry to FINAL.
func (r *PgxJournalRepository) FinalizeEntry(ctx context.Context, companyID, entryID, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = 'FINAL', last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $1 AND entry_id = $2 AND status = 'DRAFT';
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, entryID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to finalize journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: draft journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return nil
}

// ListEntries retrieves journal entries with pagination, newest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE company_id = $1
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning journal entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}

// FindFinalLines retrieves all lines of FINAL entries up to the cutoff date,
// joined with their parent entry's date. Strict bound unless inclusive.
func (r *PgxJournalRepository) FindFinalLines(ctx context.Context, companyID string, cutoff time.Time, inclusive bool) ([]domain.DatedLine, error) {
	operator := "<"
	if inclusive {
		operator = "<="
	}
	query := `
		SELECT l.account_id, e.entry_date, l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.company_id = $1
			AND e.status = 'FINAL'
			AND e.entry_date ` + operator + ` $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error querying final lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.DatedLine{}
	for rows.Next() {
		var line domain.DatedLine
		if err := rows.Scan(&line.AccountID, &line.EntryDate, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("error scanning line row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows: %w", err)
	}
	return lines, nil
}

// FindFinalEntriesInPeriod retrieves FINAL entries in the closed period with
// their owned lines, ordered by entry date ascending.
func (r *PgxJournalRepository) FindFinalEntriesInPeriod(ctx context.Context, companyID string, period domain.FiscalPeriod) ([]domain.EntryWithLines, error) {
	entryQuery := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE company_id = $1
			AND status = 'FINAL'
			AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, entryQuery, companyID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("error querying period entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	entryIDs := []string{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning journal entry row: %w", err)
		}
		entries = append(entries, entry)
		entryIDs = append(entryIDs, entry.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	linesByEntry, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	result := make([]domain.EntryWithLines, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domain.EntryWithLines{
			Entry: entry,
			Lines: linesByEntry[entry.EntryID],
		})
	}
	return result, nil
}

// findLinesByEntryIDs loads the lines of the given entries, keyed by entry
// id, preserving each entry's line order.
func (r *PgxJournalRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT line_id, entry_id, account_id, debit, credit, description, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_order ASC;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying journal lines: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(
			&line.LineID,
			&line.EntryID,
			&line.AccountID,
			&line.Debit,
			&line.Credit,
			&line.Description,
			&line.CreatedAt,
			&line.CreatedBy,
			&line.LastUpdatedAt,
			&line.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning journal line row: %w", err)
		}
		result[line.EntryID] = append(result[line.EntryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return result, nil
}
