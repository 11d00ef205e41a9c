// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package root

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"

	"github.com/globtree/globtree/modules/glob"
	"github.com/globtree/globtree/modules/glob/walk"
	"github.com/globtree/globtree/modules/trace"
	"github.com/globtree/globtree/pkg/globfind/cache"
	"github.com/globtree/globtree/pkg/globfind/config"
	"github.com/globtree/globtree/pkg/globfind/fingerprint"
)

type walkOpts struct {
	root           string
	depth          int
	followSymlinks bool
	not            []string
	hash           bool
	hashJobs       int
	cacheWrite     string
	configPath     string
	long           bool
	noColor        bool
}

func newWalkCmd(g *Globals) *cobra.Command {
	o := &walkOpts{}
	cmd := &cobra.Command{
		Use:   "walk <pattern>",
		Short: "Walk root matching pattern, printing every match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(args[0], o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.root, "root", ".", "directory to walk")
	f.IntVar(&o.depth, "depth", -1, "maximum descent depth (-1: use config or unbounded)")
	f.BoolVar(&o.followSymlinks, "follow-symlinks", false, "follow symlinks, detecting reentrant cycles")
	f.StringArrayVar(&o.not, "not", nil, "deny pattern (repeatable)")
	f.BoolVar(&o.hash, "hash", false, "fingerprint each matched file with BLAKE3")
	f.IntVar(&o.hashJobs, "hash-jobs", 4, "concurrent BLAKE3 fingerprint jobs")
	f.StringVar(&o.cacheWrite, "cache-write", "", "write matched paths to a zstd NDJSON cache file")
	f.StringVar(&o.configPath, "config", "", "path to .globfind.toml (default: <root>/.globfind.toml)")
	f.BoolVar(&o.long, "long", false, "column-align output, accounting for multi-byte filenames")
	f.BoolVar(&o.noColor, "no-color", false, "disable colorized output")
	return cmd
}

func runWalk(pattern string, o *walkOpts) error {
	cfg, err := config.Load(o.root, o.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyCaseOverride()

	g, err := glob.Parse(pattern)
	if err != nil {
		return err
	}

	behavior := cfg.WalkBehavior()
	if o.depth >= 0 {
		behavior.Depth = o.depth
	}
	if o.followSymlinks {
		behavior.Link = walk.ReadTarget
	}

	denyPatterns := append(append([]string{}, cfg.Ignore...), o.not...)
	var filters []walk.FilterFunc
	if len(denyPatterns) > 0 {
		notFilter, err := walk.Not(denyPatterns...)
		if err != nil {
			return err
		}
		filters = append(filters, notFilter)
	}

	color := !o.noColor && isatty.IsTerminal(os.Stdout.Fd())
	bar := newProgressBar()
	defer bar.wait()

	var matched []cache.Record
	var hashPaths []string
	for entry, werr := range g.WalkWithBehavior(o.root, behavior, filters...) {
		bar.incr()
		if werr != nil {
			trace.Errorf("walk %s: %v", o.root, werr)
			continue
		}
		printEntry(entry, color, o.long)
		matched = append(matched, cache.Record{Path: entry.Path(), IsDir: entry.IsDir()})
		if o.hash && !entry.IsDir() {
			hashPaths = append(hashPaths, filepath.Join(o.root, entry.Path()))
		}
	}

	if o.hash {
		if err := printHashes(hashPaths, o); err != nil {
			return err
		}
	}
	if o.cacheWrite != "" {
		if err := cache.Write(o.cacheWrite, func(emit func(cache.Record) error) error {
			for _, r := range matched {
				if err := emit(r); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

const longColumnWidth = 40

func printEntry(e walk.Entry, color, long bool) {
	text := e.Path()
	if long {
		if pad := longColumnWidth - uniseg.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	if color {
		if e.IsDir() {
			text = ansi.Color(text, "cyan+b")
		} else {
			text = ansi.Color(text, "green")
		}
	}
	fmt.Println(text)
}

func printHashes(paths []string, o *walkOpts) error {
	results, err := fingerprint.Many(context.Background(), paths, o.hashJobs)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Printf("%s  %s\n", r.Digest.String(), r.Path)
	}
	return nil
}

// progressBar wraps mpb/v8, sized via term.GetSize, disabled entirely when
// stderr is not a terminal.
type progressBar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgressBar() *progressBar {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return &progressBar{}
	}
	width := termWidth()
	p := mpb.New(mpb.WithWidth(width), mpb.WithRefreshRate(180*time.Millisecond))
	bar := p.New(0,
		mpb.SpinnerStyle().PositionLeft(),
		mpb.PrependDecorators(decor.Name("globfind walk")),
		mpb.AppendDecorators(decor.CurrentNoUnit("%d entries")),
	)
	return &progressBar{p: p, bar: bar}
}

func (b *progressBar) incr() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

func (b *progressBar) wait() {
	if b.bar != nil {
		b.bar.SetTotal(-1, true)
	}
	if b.p != nil {
		b.p.Wait()
	}
}

func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
