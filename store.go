package folio

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrInquiryNotFound is returned when a requested inquiry does not exist.
var ErrInquiryNotFound = errors.New("inquiry not found")

// Inquiry is a stored contact form submission.
type Inquiry struct {
	ID        string
	CreatedAt time.Time
	ContactForm
}

// Store wraps a SQLite database holding contact inquiries.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets page reads proceed while a submission is written; the busy
	// timeout makes concurrent writers wait instead of failing.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS inquiries (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    company TEXT NOT NULL DEFAULT '',
    project_type TEXT NOT NULL,
    services TEXT NOT NULL,
    budget TEXT NOT NULL,
    timeline TEXT NOT NULL,
    location TEXT NOT NULL,
    description TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS inquiries_created_at ON inquiries(created_at);
`)
	return err
}

// createdLayout has a fixed-width fraction so stored timestamps sort as text.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

const inquiryColumns = `id, created_at, first_name, last_name, email, phone, company, project_type, services, budget, timeline, location, description`

// SaveInquiry inserts a submission.
func (s *Store) SaveInquiry(q Inquiry) error {
	_, err := s.db.Exec(`INSERT INTO inquiries (`+inquiryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.CreatedAt.UTC().Format(createdLayout), q.FirstName, q.LastName, q.Email, q.Phone, q.Company,
		q.ProjectType, JoinList(q.Services), q.Budget, q.Timeline, q.Location, q.Description)
	return err
}

// ListInquiries returns every inquiry, newest first.
func (s *Store) ListInquiries() ([]Inquiry, error) {
	rows, err := s.db.Query(`SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Inquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// GetInquiry returns one inquiry by ID.
func (s *Store) GetInquiry(id string) (Inquiry, error) {
	row := s.db.QueryRow(`SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?`, id)
	q, err := scanInquiry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Inquiry{}, ErrInquiryNotFound
	}
	return q, err
}

// DeleteInquiry removes an inquiry by ID.
func (s *Store) DeleteInquiry(id string) error {
	res, err := s.db.Exec(`DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInquiry(r rowScanner) (Inquiry, error) {
	var q Inquiry
	var created, services string
	if err := r.Scan(&q.ID, &created, &q.FirstName, &q.LastName, &q.Email, &q.Phone, &q.Company,
		&q.ProjectType, &services, &q.Budget, &q.Timeline, &q.Location, &q.Description); err != nil {
		return Inquiry{}, err
	}
	q.CreatedAt, _ = time.Parse(createdLayout, created)
	q.Services = ParseList(services)
	return q, nil
}

// JoinList encodes values as a comma-delimited string with leading and
// trailing commas (e.g. ",architecture,interior,").
func JoinList(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	normalized := make([]string, len(vals))
	for i, v := range vals {
		normalized[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return "," + strings.Join(normalized, ",") + ","
}

// ParseList splits a comma-delimited string (e.g. ",a,b,") into a slice.
func ParseList(s string) []string {
	s = strings.Trim(s, ",")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
