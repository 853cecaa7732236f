// Package profiling writes pprof CPU and heap profiles for a single run.
package profiling

import (
	"io"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

// DoCPUProfiling starts CPU profiling into filePath. The returned func stops it
// and is never nil.
func DoCPUProfiling(filePath string, log zerolog.Logger) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Error().Err(err).Msg("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.Error().Err(err).Str("file", filePath).Msg("could not close CPU profile")
		}
	}
}

// DoMemProfiling returns a func that writes a heap profile to filePath when called,
// usually on exit.
func DoMemProfiling(filePath string, log zerolog.Logger) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			log.Error().Err(err).Str("file", filePath).Msg("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.Error().Err(err).Msg("could not write memory profile")
		}
	}
}
