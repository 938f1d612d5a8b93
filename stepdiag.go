/*
 * stepdiag.go, part of gochem.
 */

package mcstep

import (
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// StepLog receives one scalar snapshot per Engine.ChangeMolecule call,
// taken after any tuning for that step. It never sees
// coordinates: this keeps trajectory dumping out of this package's scope
// while still giving a caller visibility into how the tuning is going.
type StepLog interface {
	Record(stepNum int, bondRatio, angleRatio, energy float64)
}

// NullStepLog is the zero-cost default: every call is a no-op.
type NullStepLog struct{}

func (NullStepLog) Record(int, float64, float64, float64) {}

type stepRecord struct {
	stepNum               int
	bondRatio, angleRatio float64
	energy                float64
}

// CompressedStepLog buffers records on a channel and writes them, newline
// delimited, through a zstd encoder from a background goroutine -- so
// Record never blocks the step driver's goroutine for longer than a
// channel send. When the buffer is full, the record is dropped rather
// than blocking; Dropped counts how many, and is safe to read only after
// Close (or Context cancellation) has stopped the writer goroutine.
type CompressedStepLog struct {
	records chan stepRecord
	done    chan struct{}
	Dropped int
}

// NewCompressedStepLog wraps w in a zstd encoder and starts the
// background flush loop, which runs until ctx is cancelled or Close is
// called. bufSize is the number of pending records the channel holds
// before Record starts dropping.
func NewCompressedStepLog(ctx context.Context, w io.Writer, bufSize int) (*CompressedStepLog, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	l := &CompressedStepLog{
		records: make(chan stepRecord, bufSize),
		done:    make(chan struct{}),
	}
	go l.run(ctx, enc)
	return l, nil
}

func (l *CompressedStepLog) run(ctx context.Context, enc *zstd.Encoder) {
	defer close(l.done)
	defer enc.Close()
	for {
		select {
		case rec, ok := <-l.records:
			if !ok {
				return
			}
			line := fmt.Sprintf("%d\t%g\t%g\t%g\n", rec.stepNum, rec.bondRatio, rec.angleRatio, rec.energy)
			enc.Write([]byte(line))
		case <-ctx.Done():
			return
		}
	}
}

func (l *CompressedStepLog) Record(stepNum int, bondRatio, angleRatio, energy float64) {
	rec := stepRecord{stepNum, bondRatio, angleRatio, energy}
	select {
	case l.records <- rec:
	default:
		l.Dropped++
	}
}

// Close stops the background flush loop and waits for it to finish
// flushing the zstd trailer.
func (l *CompressedStepLog) Close() {
	close(l.records)
	<-l.done
}
