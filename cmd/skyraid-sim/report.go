package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	Step          time.Duration
	Width, Height float64
	Config        game.Config

	// Results
	TotalTime      time.Duration
	UpdateTime     Stats
	Spawned        int
	Reaped         int
	Final          game.Snapshot
	Scheduler      *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Skyraid Simulation Report

## Configuration
- **Game Time:** {{.Duration}} in steps of {{.Step}}
- **Viewport:** {{.Width}} x {{.Height}}
- **Player Speed:** {{.Config.PlayerSpeed}}
- **Enemy Speed:** {{.Config.EnemySpeed}}
- **Enemy Batch:** {{.Config.EnemyCount}}

## Outcome
- **Frames:** {{.Scheduler.FrameCount}}
- **Enemies Spawned:** {{.Spawned}}
- **Enemies Reaped:** {{.Reaped}}
- **Enemies Remaining:** {{len .Final.Enemies}}
{{- range .Final.Census}}
  - {{.Variant}}: {{.Count}}
{{- end}}
- **Player:** {{.Final.PlayerPosition}} (frame {{.Final.PlayerFrame}})

## Performance Results
- **Wall Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Avg | Min | Max | Total |
|---|---|---|---|---|---|
{{- range .Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} | {{.TotalDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
