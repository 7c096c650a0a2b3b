package cli

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/sharks/shamir"
)

// shareDocument is the YAML/JSON form of one share. Every share of a split
// carries the same set id so shares of different splits are not mixed.
type shareDocument struct {
	Set       string       `yaml:"set" json:"set"`
	Threshold int          `yaml:"threshold" json:"threshold"`
	Share     shamir.Share `yaml:"share" json:"share"`
}

// shareSet is what recovery reads back: the shares and, for documents,
// the threshold and set id they were produced with.
type shareSet struct {
	Set       uuid.UUID
	Threshold int
	Shares    []shamir.Share
}

var errMixedSets = fmt.Errorf("%w: shares belong to different splits", shamir.ErrInconsistentShares)

func writeShares(w io.Writer, format string, set shareSet) error {
	switch format {
	case FormatBase64, FormatHex:
		bw := bufio.NewWriter(w)
		for _, share := range set.Shares {
			line := share.String()
			if format == FormatHex {
				line = hex.EncodeToString(share.Bytes())
			}
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return err
			}
		}
		return bw.Flush()

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		for _, share := range set.Shares {
			if err := enc.Encode(newShareDocument(set, share)); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
		}
		return enc.Close()

	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, share := range set.Shares {
			if err := enc.Encode(newShareDocument(set, share)); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
		}
		return nil

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func newShareDocument(set shareSet, share shamir.Share) shareDocument {
	return shareDocument{
		Set:       set.Set.String(),
		Threshold: set.Threshold,
		Share:     share,
	}
}

func readShares(r io.Reader, format string) (*shareSet, error) {
	switch format {
	case FormatBase64, FormatHex:
		return readShareLines(r, format)

	case FormatYAML:
		dec := yaml.NewDecoder(r)
		return readShareDocuments(func(doc *shareDocument) error {
			return dec.Decode(doc)
		})

	case FormatJSON:
		dec := json.NewDecoder(r)
		return readShareDocuments(func(doc *shareDocument) error {
			return dec.Decode(doc)
		})

	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// readShareLines reads one share per line. Lines are not length limited:
// a share is one byte longer than the secret.
func readShareLines(r io.Reader, format string) (*shareSet, error) {
	set := &shareSet{}

	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read shares: %w", readErr)
		}

		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, "#") {
			share, err := parseShareLine(line, format)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			set.Shares = append(set.Shares, share)
		}

		if readErr != nil {
			return set, nil
		}
	}
}

func parseShareLine(line, format string) (shamir.Share, error) {
	if format != FormatHex {
		return shamir.ParseShareString(line)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return shamir.Share{}, errors.Join(shamir.ErrMalformedShare, err)
	}
	return shamir.ParseShare(data)
}

func readShareDocuments(decode func(*shareDocument) error) (*shareSet, error) {
	set := &shareSet{}

	for n := 1; ; n++ {
		var doc shareDocument
		if err := decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("document %d: %w", n, err)
		}

		id, err := uuid.Parse(doc.Set)
		if err != nil {
			return nil, fmt.Errorf("document %d: invalid set id: %w", n, err)
		}

		if len(set.Shares) == 0 {
			set.Set = id
			set.Threshold = doc.Threshold
		} else if id != set.Set || doc.Threshold != set.Threshold {
			return nil, fmt.Errorf("document %d: %w", n, errMixedSets)
		}

		set.Shares = append(set.Shares, doc.Share)
	}

	return set, nil
}
