package cert

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/crillab/papilo-cert/problem"
)

// View re-exports problem.View so callers of this package don't need
// to import package problem just to call New.
type View = problem.View

// activeEngine is the VeriPB-emitting implementation of Engine. It
// owns the registry and writes proof lines through a formatter to
// sink.
type activeEngine struct {
	reg    *registry
	fmt    *formatter
	sink   *bufio.Writer
	closer io.Closer
	runID  uuid.UUID
}

// New builds an active certificate engine over v, reserving an id for
// every finite row side. It writes nothing to sink; the proof header
// is written by Header. sink is wrapped in a buffered writer; callers
// that need the bytes durable before proceeding should call Flush.
//
// If sink also implements io.Closer, Close will close it.
func New(v View, sink io.Writer) (Engine, error) {
	reg := newRegistry(v)
	bw := bufio.NewWriter(sink)
	e := &activeEngine{
		reg:   reg,
		fmt:   newFormatter(bw),
		sink:  bw,
		runID: uuid.New(),
	}
	if c, ok := sink.(io.Closer); ok {
		e.closer = c
	}
	return e, nil
}

func (e *activeEngine) Header() error {
	comments := []string{
		"Log files generated by the certificate engine",
		"run " + e.runID.String(),
	}
	if err := e.fmt.header(e.reg.nextID, comments); err != nil {
		return errors.Wrap(err, "cert: writing proof header")
	}
	return e.flushErr()
}

func (e *activeEngine) Flush() error {
	return e.flushErr()
}

func (e *activeEngine) flushErr() error {
	if err := e.sink.Flush(); err != nil {
		return errors.Wrap(err, "cert: flushing proof sink")
	}
	return nil
}

func (e *activeEngine) Close() error {
	if err := e.flushErr(); err != nil {
		return err
	}
	if e.closer != nil {
		return errors.Wrap(e.closer.Close(), "cert: closing proof sink")
	}
	return nil
}

func (e *activeEngine) NextID() ID {
	return e.reg.nextID
}

// ProofFileName derives the .pbp proof file name for a problem named
// problemName: strip a trailing .mps, .mps.gz, or .mps.bz2 suffix and
// append .pbp.
func ProofFileName(problemName string) string {
	for _, suffix := range []string{".mps.bz2", ".mps.gz", ".mps"} {
		if strings.HasSuffix(problemName, suffix) {
			return problemName[:len(problemName)-len(suffix)] + ".pbp"
		}
	}
	return problemName + ".pbp"
}
