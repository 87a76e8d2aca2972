package shaders

import (
	"testing"
	"time"
)

func TestIsStale(t *testing.T) {
	source := &Entry{ModTime: baseTime}

	if !IsStale(source, nil) {
		t.Error("IsStale() without a binary = false, want true")
	}

	if !IsStale(source, &Entry{ModTime: baseTime.Add(-time.Second)}) {
		t.Error("IsStale() with an older binary = false, want true")
	}

	if IsStale(source, &Entry{ModTime: baseTime}) {
		t.Error("IsStale() with equal timestamps = true, want false")
	}

	if IsStale(source, &Entry{ModTime: baseTime.Add(time.Second)}) {
		t.Error("IsStale() with a newer binary = true, want false")
	}
}

func newGroup(path string, entries ...*Entry) *Group {
	for _, entry := range entries {
		entry.Name, entry.Type, _ = ParseEntryName(entry.FileName)
		entry.Path = path + "/" + entry.FileName
	}

	return &Group{Name: path, Path: path, Entries: entries}
}

func TestPlan(t *testing.T) {
	groups := []*Group{
		newGroup("fluid",
			&Entry{FileName: "blur.frag", ModTime: baseTime.Add(time.Second)},
			&Entry{FileName: "frag.spv", ModTime: baseTime},
			&Entry{FileName: "quad.vert", ModTime: baseTime},
			&Entry{FileName: "vert.spv", ModTime: baseTime},
		),
		newGroup("fluid2",
			&Entry{FileName: "noise.comp", ModTime: baseTime},
			&Entry{FileName: "notes.txt.bak", ModTime: baseTime},
		),
	}

	jobs, skipped := Plan(groups, false)
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2: %+v", len(jobs), jobs)
	}

	if jobs[0].Source.FileName != "blur.frag" || jobs[0].Output != "fluid/frag.spv" || jobs[0].Reason != ReasonOutdated {
		t.Errorf("jobs[0] = %s -> %s (%s), want blur.frag -> fluid/frag.spv (outdated)",
			jobs[0].Source.FileName, jobs[0].Output, jobs[0].Reason)
	}

	if jobs[1].Source.FileName != "noise.comp" || jobs[1].Output != "fluid2/comp.spv" || jobs[1].Reason != ReasonMissing {
		t.Errorf("jobs[1] = %s -> %s (%s), want noise.comp -> fluid2/comp.spv (missing)",
			jobs[1].Source.FileName, jobs[1].Output, jobs[1].Reason)
	}

	if len(skipped) != 1 || skipped[0] != "fluid2/notes.txt.bak" {
		t.Errorf("skipped = %q, want [fluid2/notes.txt.bak]", skipped)
	}
}

func TestPlanUpToDate(t *testing.T) {
	groups := []*Group{
		newGroup("fluid",
			&Entry{FileName: "blur.frag", ModTime: baseTime},
			&Entry{FileName: "frag.spv", ModTime: baseTime},
			&Entry{FileName: "quad.vert", ModTime: baseTime},
			&Entry{FileName: "vert.spv", ModTime: baseTime.Add(time.Hour)},
		),
	}

	jobs, _ := Plan(groups, false)
	if len(jobs) != 0 {
		t.Errorf("len(jobs) = %d, want 0", len(jobs))
	}
}

func TestPlanForce(t *testing.T) {
	groups := []*Group{
		newGroup("fluid",
			&Entry{FileName: "blur.frag", ModTime: baseTime},
			&Entry{FileName: "frag.spv", ModTime: baseTime.Add(time.Hour)},
			&Entry{FileName: "quad.vert", ModTime: baseTime},
		),
	}

	jobs, _ := Plan(groups, true)
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2", len(jobs))
	}

	if jobs[0].Reason != ReasonForced {
		t.Errorf("jobs[0].Reason = %s, want forced", jobs[0].Reason)
	}

	if jobs[1].Reason != ReasonMissing || jobs[1].Output != "fluid/vert.spv" {
		t.Errorf("jobs[1] = %s (%s), want fluid/vert.spv (missing)", jobs[1].Output, jobs[1].Reason)
	}
}

func TestPlanForceSkipsSelfMatch(t *testing.T) {
	// frag.frag is paired with itself, so its "output" would be the source
	groups := []*Group{
		newGroup("fluid",
			&Entry{FileName: "frag.frag", ModTime: baseTime},
			&Entry{FileName: "quad.vert", ModTime: baseTime},
			&Entry{FileName: "vert.spv", ModTime: baseTime},
		),
	}

	jobs, _ := Plan(groups, true)
	if len(jobs) != 1 {
		t.Fatalf("len(jobs) = %d, want 1: %+v", len(jobs), jobs)
	}

	for _, job := range jobs {
		if job.Output == job.Source.Path {
			t.Errorf("job for %s writes to its own source", job.Source.Path)
		}
	}

	if jobs[0].Source.FileName != "quad.vert" || jobs[0].Output != "fluid/vert.spv" {
		t.Errorf("jobs[0] = %s -> %s, want quad.vert -> fluid/vert.spv", jobs[0].Source.FileName, jobs[0].Output)
	}
}
