package store

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
)

const (
	reportsDir = "reports"
	reportExt  = ".json"
)

// reportFile is the on-disk shape of a domain.Report.
type reportFile struct {
	ID                      string `json:"id"`
	Bits                    int    `json:"bits"`
	Digest                  string `json:"digest"`
	P                       string `json:"p"`
	G                       string `json:"g"`
	Q                       string `json:"q,omitempty"`
	PublicKey               string `json:"public_key"`
	PublicKeyFingerprint    string `json:"public_key_fingerprint"`
	CiphertextX             string `json:"ciphertext_x"`
	CiphertextY             string `json:"ciphertext_y"`
	Decrypted               []byte `json:"decrypted"`
	DigestMatches           bool   `json:"digest_matches"`
	SignatureX              string `json:"signature_x"`
	SignatureY              string `json:"signature_y"`
	SignatureValid          bool   `json:"signature_valid"`
	CorruptedSignatureValid bool   `json:"corrupted_signature_valid"`
	LegacyVerified          bool   `json:"legacy_verified"`
	LegacyCorruptedVerified bool   `json:"legacy_corrupted_verified"`
	ElapsedMS               int64  `json:"elapsed_ms"`
	CreatedUTC              int64  `json:"created_utc"`
}

func toFile(r domain.Report) reportFile {
	return reportFile{
		ID:                      r.ID,
		Bits:                    r.Bits,
		Digest:                  r.Digest,
		P:                       crypto.Hex(r.Params.P),
		G:                       crypto.Hex(r.Params.G),
		Q:                       crypto.Hex(r.Params.Q),
		PublicKey:               crypto.Hex(r.PublicKey),
		PublicKeyFingerprint:    r.PublicKeyFingerprint,
		CiphertextX:             crypto.Hex(r.Ciphertext.X),
		CiphertextY:             crypto.Hex(r.Ciphertext.Y),
		Decrypted:               r.Decrypted,
		DigestMatches:           r.DigestMatches,
		SignatureX:              crypto.Hex(r.Signature.X),
		SignatureY:              crypto.Hex(r.Signature.Y),
		SignatureValid:          r.SignatureValid,
		CorruptedSignatureValid: r.CorruptedSignatureValid,
		LegacyVerified:          r.LegacyVerified,
		LegacyCorruptedVerified: r.LegacyCorruptedVerified,
		ElapsedMS:               r.Elapsed.Milliseconds(),
		CreatedUTC:              r.CreatedUTC,
	}
}

func (f reportFile) toReport() (domain.Report, error) {
	r := domain.Report{
		ID:                      f.ID,
		Bits:                    f.Bits,
		Digest:                  f.Digest,
		PublicKeyFingerprint:    f.PublicKeyFingerprint,
		Decrypted:               f.Decrypted,
		DigestMatches:           f.DigestMatches,
		SignatureValid:          f.SignatureValid,
		CorruptedSignatureValid: f.CorruptedSignatureValid,
		LegacyVerified:          f.LegacyVerified,
		LegacyCorruptedVerified: f.LegacyCorruptedVerified,
		Elapsed:                 time.Duration(f.ElapsedMS) * time.Millisecond,
		CreatedUTC:              f.CreatedUTC,
	}
	fields := []struct {
		name string
		src  string
		dst  **big.Int
	}{
		{"p", f.P, &r.Params.P},
		{"g", f.G, &r.Params.G},
		{"q", f.Q, &r.Params.Q},
		{"public_key", f.PublicKey, &r.PublicKey},
		{"ciphertext_x", f.CiphertextX, &r.Ciphertext.X},
		{"ciphertext_y", f.CiphertextY, &r.Ciphertext.Y},
		{"signature_x", f.SignatureX, &r.Signature.X},
		{"signature_y", f.SignatureY, &r.Signature.Y},
	}
	for _, fld := range fields {
		v, err := crypto.ParseHex(fld.src)
		if err != nil {
			return domain.Report{}, fmt.Errorf("report %s: field %s: %w", f.ID, fld.name, err)
		}
		*fld.dst = v
	}
	return r, nil
}

// ReportFileStore keeps one JSON file per report under <dir>/reports.
type ReportFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewReportFileStore returns a ReportFileStore rooted at dir.
func NewReportFileStore(dir string) *ReportFileStore {
	return &ReportFileStore{dir: dir}
}

// SaveReport writes r, replacing any earlier report with the same id.
func (s *ReportFileStore) SaveReport(r domain.Report) error {
	path, err := s.path(r.ID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(path, toFile(r), 0o600)
}

// LoadReport returns the report with id; ok is false if none is stored.
func (s *ReportFileStore) LoadReport(id string) (domain.Report, bool, error) {
	path, err := s.path(id)
	if err != nil {
		return domain.Report{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var f reportFile
	found, err := readJSON(path, &f)
	if err != nil || !found {
		return domain.Report{}, false, err
	}
	r, err := f.toReport()
	if err != nil {
		return domain.Report{}, false, err
	}
	return r, true, nil
}

// ListReports returns stored report ids in lexical order.
func (s *ReportFileStore) ListReports() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, reportsDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, reportExt) {
			continue
		}
		id := strings.TrimSuffix(name, reportExt)
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// path maps a run id to its file. Ids must be UUIDs so they can never
// escape the reports directory.
func (s *ReportFileStore) path(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: report id %q", domain.ErrInvalidParameters, id)
	}
	return filepath.Join(s.dir, reportsDir, u.String()+reportExt), nil
}
