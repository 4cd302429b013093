// Copyright 2021 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/methyl/annotation"
	"github.com/grailbio/methyl/methylation"
	"github.com/pkg/errors"
)

// parseRange parses a "low,high" flag value into its two floats.
func parseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.Errorf("range %q must hold exactly two comma-separated values", s)
	}
	r := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "range %q", s)
		}
		r[i] = v
	}
	return r, nil
}

func parseBeta(s string) (float64, error) {
	switch s {
	case "", "NA", "NaN", "nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// readBetaMatrix reads a beta matrix TSV. The header row names the
// probe ID column followed by one column per sample; each following row
// holds a probe ID and its beta values, with NA or empty cells for
// missing measurements. The file may be gzipped.
func readBetaMatrix(ctx context.Context, path string) (m *methylation.BetaMatrix, names []string, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	var inr io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(inr, in.Name()); u != nil {
		inr = u
	}
	scanner := bufio.NewScanner(inr)
	// Rows can be wide for large cohorts.
	scanner.Buffer(make([]byte, 0, 1<<20), 16<<20)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "reading header")
		}
		return nil, nil, errors.New("empty beta matrix")
	}
	header := strings.Split(scanner.Text(), "\t")
	nSamples := len(header) - 1
	if nSamples < 1 {
		return nil, nil, errors.Errorf("header %v names no sample columns", header)
	}

	var data []float64
	nLine := 1
	for scanner.Scan() {
		nLine++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != nSamples+1 {
			return nil, nil, errors.Errorf("line %d: %d columns, header has %d", nLine, len(fields), nSamples+1)
		}
		names = append(names, fields[0])
		for _, f := range fields[1:] {
			v, err := parseBeta(f)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "line %d: bad beta value %q", nLine, f)
			}
			data = append(data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read")
	}
	return methylation.NewBetaMatrix(len(names), nSamples, data), names, nil
}

type aucRow struct {
	Probe string  `tsv:"probe_id"`
	AUC   float64 `tsv:"auc"`
}

// readScores reads a per-probe AUC TSV with probe_id and auc columns,
// in the same probe order as the beta matrix. The file may be gzipped.
func readScores(ctx context.Context, path string) (names []string, scores []float64, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	var inr io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(inr, in.Name()); u != nil {
		inr = u
	}
	r := tsv.NewReader(inr)
	r.HasHeaderRow = true
	r.UseHeaderNames = true
	for {
		var row aucRow
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, err
		}
		names = append(names, row.Probe)
		scores = append(scores, row.AUC)
	}
	return names, scores, nil
}

// writeSelection writes one retained panel as a TSV of row index, probe
// name, placement, and AUC, in ranked order.
func writeSelection(ctx context.Context, path string, indices []int,
	scores []float64, probes *annotation.Table) (err error) {
	dst, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, dst, &err)
	w := tsv.NewWriter(dst.Writer(ctx))
	w.WriteString("index")
	w.WriteString("probe_id")
	w.WriteString("chrom")
	w.WriteString("pos")
	w.WriteString("auc")
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, idx := range indices {
		w.WriteUint32(uint32(idx))
		w.WriteString(probes.Name(idx))
		if c := probes.Chrom(idx); c != "" {
			w.WriteString(c)
		} else {
			w.WriteString("NA")
		}
		if pos, ok := probes.Pos(idx); ok {
			w.WriteUint32(uint32(pos))
		} else {
			w.WriteString("NA")
		}
		w.WriteString(strconv.FormatFloat(scores[idx], 'g', -1, 64))
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
