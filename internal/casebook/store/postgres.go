package store

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"instructhub/internal/casebook/ingest"
	"instructhub/internal/casebook/models"
	dErrors "instructhub/pkg/domain-errors"
)

// Postgres reads prospect documents from the reporting database. Prospect
// aggregates are stored as JSONB documents mirroring the upstream source;
// identity verifications live in their own table because collaborator
// actions mutate them independently of the document snapshot.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to the database and verifies the connection.
func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "connect to postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "ping postgres")
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Postgres) Close() {
	s.pool.Close()
}

func (s *Postgres) Prospects(ctx context.Context) ([]models.Prospect, error) {
	rows, err := s.pool.Query(ctx, `SELECT doc FROM prospects ORDER BY prospect_id`)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "query prospects")
	}
	defer rows.Close()

	var prospects []models.Prospect
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "scan prospect document")
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode prospect document")
		}
		prospects = append(prospects, ingest.Prospect(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "iterate prospects")
	}

	if err := s.attachVerifications(ctx, prospects); err != nil {
		return nil, err
	}
	return prospects, nil
}

// attachVerifications merges the mutable verification rows into each
// prospect. Reconciliation dedups by internal id, so a verification also
// present in the document snapshot is only counted once.
func (s *Postgres) attachVerifications(ctx context.Context, prospects []models.Prospect) error {
	rows, err := s.pool.Query(ctx, `
		SELECT internal_id, instruction_ref, client_email, check_id,
		       eid_status, eid_overall_result, eid_checked_date,
		       check_result, pep_result, address_result, raw_response
		FROM id_verifications
		ORDER BY internal_id DESC`)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "query id verifications")
	}
	defer rows.Close()

	byRef := make(map[string][]models.IdentityVerification)
	for rows.Next() {
		var v models.IdentityVerification
		if err := rows.Scan(
			&v.InternalID, &v.InstructionRef, &v.ClientEmail, &v.CheckID,
			&v.EIDStatus, &v.EIDOverallResult, &v.EIDCheckedDate,
			&v.CheckResult, &v.PEPAndSanctionsResult, &v.AddressVerificationResult,
			&v.EIDRawResponse,
		); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "scan id verification")
		}
		byRef[v.InstructionRef] = append(byRef[v.InstructionRef], v)
	}
	if err := rows.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "iterate id verifications")
	}

	for pi := range prospects {
		p := &prospects[pi]
		for ii := range p.Instructions {
			if vs, ok := byRef[p.Instructions[ii].InstructionRef]; ok {
				p.IdentityVerifications = append(p.IdentityVerifications, vs...)
			}
		}
	}
	return nil
}

func (s *Postgres) SetEIDResult(ctx context.Context, instructionRef, status, result string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE id_verifications
		SET eid_status = $2, eid_overall_result = $3
		WHERE instruction_ref = $1`,
		instructionRef, status, result)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "update id verification")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
