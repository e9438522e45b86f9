package ui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/KnightChaser/llce/pkg/scan"
	"github.com/KnightChaser/llce/pkg/session"
	"github.com/KnightChaser/llce/pkg/target"
	"github.com/KnightChaser/llce/pkg/utils"
	"github.com/samber/lo"
)

func (r *Repl) handleAttach(args []string) {
	if len(args) < 1 {
		r.error(r.Tr.UsageAttach)
		return
	}

	pid, err := parsePID(args[0])
	if err != nil {
		r.error(r.Tr.InvalidPID, args[0])
		return
	}

	r.plain(r.Tr.AttachingTo, pid)
	count, err := r.Session.Attach(pid)
	if err != nil {
		switch {
		case errors.Is(err, target.ErrNoSuchProcess):
			r.error(r.Tr.ProcessNotFound, pid)
		case errors.Is(err, target.ErrPermissionDenied):
			r.error(r.Tr.PermissionDenied)
		default:
			r.error(r.Tr.AttachFailed, pid, err)
		}
		return
	}

	r.success(r.Tr.InitialScanComplete, r.Session.ProcessName(), count)
	r.warning(r.Tr.PostAttachHint)
}

func (r *Repl) handleFullscan() {
	if !r.Session.Attached() {
		r.error(r.Tr.NotAttached)
		return
	}

	r.plain(r.Tr.PerformingScan, r.Session.ProcessName(), r.Session.PID())
	count, err := r.Session.Rescan()
	if err != nil {
		if session.HasErrorCode(err, session.NotAttached) {
			r.error(r.Tr.NotAttached)
		} else {
			r.error(r.Tr.FullscanFailed, err)
		}
		return
	}

	r.success(r.Tr.FullscanComplete, count)
	r.warning(r.Tr.PostFullscanHint)
}

func (r *Repl) handleDetect(args []string) {
	paginate := false
	if len(args) > 0 {
		if args[0] == "page" {
			paginate = true
		} else {
			r.error(r.Tr.InvalidDetectArg)
		}
	}

	r.plain(r.Tr.DetectingChanges)
	changes, err := r.Session.DetectChanges()
	if err != nil {
		if session.HasErrorCode(err, session.NoScanData) {
			r.error(r.Tr.NoScanData)
		} else {
			r.error(err.Error())
		}
		return
	}

	r.success(r.Tr.DetectedChanges, len(changes))

	rows := lo.Map(changes, func(change scan.Change, _ int) []string {
		return []string{
			fmt.Sprintf("  -> 0x%x", change.Addr),
			fmt.Sprintf("0x%02x -> 0x%02x", change.Old, change.New),
		}
	})

	if paginate {
		table, err := utils.RenderTable(rows)
		if err != nil {
			r.Log.Error(err)
			return
		}
		if err := r.runPager(table); err != nil {
			r.error(r.Tr.PagerFailed, err)
		}
		return
	}

	limit := r.Config.UserConfig.Scan.MaxDisplayedChanges
	table, err := utils.RenderTable(rows[:utils.Min(limit, len(rows))])
	if err != nil {
		r.Log.Error(err)
		return
	}
	if table != "" {
		fmt.Println(table)
	}
	if len(rows) > limit {
		r.warning(r.Tr.OutputTruncated)
	}
}

func (r *Repl) handleSearch(args []string) {
	if len(args) < 2 {
		r.error(r.Tr.UsageSearch)
		r.warning(r.Tr.TypesLine)
		return
	}

	width, err := scan.ParseWidth(args[0])
	if err != nil {
		r.error(err.Error())
		return
	}

	// base 0 auto-detects a 0x prefix
	value, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		r.error(err.Error())
		return
	}

	hits, err := r.Session.SearchNewest(width, scan.CmpEq, value)
	if err != nil {
		if session.HasErrorCode(err, session.NoScanData) {
			r.error(r.Tr.NoSearchData)
		} else {
			r.error(err.Error())
		}
		return
	}

	r.success(r.Tr.FoundMatches, len(hits), value, value)

	limit := r.Config.UserConfig.Scan.MaxDisplayedResults
	rows := lo.Map(hits[:utils.Min(limit, len(hits))], func(hit scan.Hit, _ int) []string {
		return []string{fmt.Sprintf("  -> 0x%x", hit.Addr), fmt.Sprintf("(%s)", scan.Width(hit.Len))}
	})
	table, err := utils.RenderTable(rows)
	if err != nil {
		r.Log.Error(err)
		return
	}
	if table != "" {
		fmt.Println(table)
	}
	if len(hits) > limit {
		r.warning(r.Tr.OutputTruncated)
	}
}

func (r *Repl) handlePoke(args []string) {
	if len(args) < 3 {
		r.error(r.Tr.UsagePoke)
		r.warning(r.Tr.TypesLine)
		return
	}

	addr, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		r.error(err.Error())
		return
	}
	width, err := scan.ParseWidth(args[1])
	if err != nil {
		r.error(err.Error())
		return
	}
	value, err := strconv.ParseUint(args[2], 0, 64)
	if err != nil {
		r.error(err.Error())
		return
	}

	if err := r.Session.Poke(uintptr(addr), width, value); err != nil {
		switch {
		case session.HasErrorCode(err, session.NotAttached):
			r.error(r.Tr.NotAttached)
		case errors.Is(err, target.ErrPermissionDenied):
			r.error(r.Tr.PermissionDenied)
		default:
			r.error(r.Tr.PokeFailed, err)
		}
		return
	}

	r.success(r.Tr.WroteValue, width, formatValue(value, width), addr)
}

func parsePID(arg string) (int, error) {
	pid, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}
	if pid <= 0 {
		return 0, fmt.Errorf("pid out of range: %d", pid)
	}
	return pid, nil
}

// formatValue renders a value zero-padded to its scan width
func formatValue(value uint64, w scan.Width) string {
	mask := ^uint64(0)
	if w != scan.WidthQword {
		mask = 1<<(8*uint(w)) - 1
	}
	return fmt.Sprintf("0x%0*x", int(w)*2, value&mask)
}
