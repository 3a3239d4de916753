// SPDX-License-Identifier: GPL-2.0-or-later

// maputils optimizes .map level sources: it marks hidden faces nodraw,
// sets level flags and reports broken brushes.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"maputils/commandline"
	"maputils/config"
	"maputils/conlog"
	"maputils/filesystem"
	"maputils/mapfile"
	"maputils/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "maputils: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	v := config.New()
	a, err := commandline.Parse(v, args, stderr)
	if err != nil {
		return err
	}
	if a.Help {
		return nil
	}
	if err := config.Load(v, a.Config); err != nil {
		return err
	}
	c, err := config.Get(v)
	if err != nil {
		return err
	}
	log, err := conlog.New(stderr, c.LogLevel)
	if err != nil {
		return err
	}
	conlog.SetPrintf(func(format string, v ...interface{}) {
		fmt.Fprintf(stdout, format, v...)
	})

	src, err := filesystem.ReadMap(a.Map)
	if err != nil {
		return err
	}
	m, err := mapfile.Parse(src,
		mapfile.WithLogger(log.With("map", a.Map)),
		mapfile.WithTolerance(c.DistanceEpsilon),
		mapfile.WithLevelHeight(c.LevelHeight),
		mapfile.WithTextures(c.NodrawTexture, c.ErrorTexture),
		mapfile.WithProbeDistance(c.ProbeDistance))
	if err != nil {
		return errors.Wrap(err, a.Map)
	}
	if len(m.Brushes) == 0 {
		return errors.Wrap(mapfile.ErrNoBrushes, a.Map)
	}

	s := report.New(a.Map)
	s.Entities = len(m.Entities)
	s.Brushes = len(m.Brushes)
	id := func(b *mapfile.Brush) report.BrushID {
		return report.BrushID{Entity: m.EntityOf(b).Number(), Brush: b.Number()}
	}

	if c.Passes.Snap {
		log.Warn("snap to grid is not implemented")
		s.Skipped = append(s.Skipped, "snap: not implemented")
	}
	if c.Passes.Broken || c.Passes.MarkErrors {
		for _, b := range m.BrokenBrushes(c.Passes.MarkErrors) {
			s.Broken = append(s.Broken, id(b))
		}
	}
	// level flags first, hidden faces are only searched among brushes on
	// the same levels
	if c.Passes.LevelFlags {
		for _, b := range m.LevelFlags() {
			s.LevelFlags = append(s.LevelFlags, id(b))
		}
	}
	if c.Passes.Intersecting {
		for _, b := range m.IntersectingBrushes() {
			s.Intersecting = append(s.Intersecting, id(b))
		}
	}
	if c.Passes.Contained {
		for _, b := range m.ContainedBrushes() {
			s.Contained = append(s.Contained, id(b))
		}
	}
	if c.Passes.Nodraw {
		s.Nodraw = m.Nodraws()
	}
	if c.Passes.Downward {
		s.Downward = m.NodrawsDownward()
	}

	if c.Commit {
		safe, err := filesystem.Commit(a.Map, []byte(m.String()), c.SafetySuffix)
		if err != nil {
			return err
		}
		s.SafetyCopy = safe
		log.Info("map written", "safetyCopy", safe)
	}

	conlog.Printf("%s", s.String())
	return writeReport(s, c.Report, stdout)
}

func writeReport(s *report.Summary, path string, stdout io.Writer) error {
	switch path {
	case "":
		return nil
	case "-":
		_, err := s.WriteTo(stdout)
		return err
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return err
	}
	return filesystem.WriteFile(path, buf.Bytes())
}
