package seqalign

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/innaky/seqalign/internal/sequence"
)

// ReadFASTA reads sequence records of the given type from a FASTA file.
func ReadFASTA(filename string, typ SequenceType) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file, typ)
}

// ParseFASTA parses FASTA-format records of the given type from a
// reader.
func ParseFASTA(r io.Reader, typ SequenceType) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentResidues strings.Builder

	flushSequence := func() error {
		if currentResidues.Len() == 0 {
			return nil
		}
		seq, err := sequence.WithMetadata(currentResidues.String(), currentID, currentDesc, typ)
		if err != nil {
			return err
		}
		sequences = append(sequences, seq)
		currentResidues.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}
			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentResidues.WriteString(line)
		}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return sequences, nil
}

// WriteFASTA writes sequence records to a FASTA file.
func WriteFASTA(filename string, sequences []*Sequence) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	for _, seq := range sequences {
		if _, err := file.WriteString(seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}
	return nil
}
