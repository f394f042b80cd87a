package main

import (
	"fmt"

	"github.com/pkg/profile"
)

type stopper interface {
	Stop()
}

type noopStopper struct{}

func (noopStopper) Stop() {}

// profileOptions maps a -profile mode to its pkg/profile option.
var profileOptions = map[string]func(*profile.Profile){
	"cpu":    profile.CPUProfile,
	"mem":    profile.MemProfileAllocs,
	"block":  profile.BlockProfile,
	"mutex":  profile.MutexProfile,
	"trace":  profile.TraceProfile,
	"thread": profile.ThreadcreationProfile,
}

// startProfile begins profiling in mode, writing into dir. An empty mode
// disables profiling.
func startProfile(mode, dir string) (stopper, error) {
	if mode == "" {
		return noopStopper{}, nil
	}
	opt, ok := profileOptions[mode]
	if !ok {
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(opt, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet), nil
}
