package walker

import "os"

// Stage identifies a pipeline phase. Lower values have higher scheduling priority.
type Stage int

const (
	// StageYieldCheck evaluates the yield filter against a file that has been read.
	StageYieldCheck Stage = iota
	// StageRead reads the full contents of an accepted file.
	StageRead
	// StageFileCheck evaluates the file filter against a listed file.
	StageFileCheck
	// StageDirStat lists the immediate entries of an accepted directory.
	StageDirStat
	// StageDirCheck evaluates the directory filter. The root is seeded here.
	StageDirCheck

	numStages = int(StageDirCheck) + 1
)

var stageNames = [numStages]string{
	StageYieldCheck: "yield-check",
	StageRead:       "read",
	StageFileCheck:  "file-check",
	StageDirStat:    "directory-stat",
	StageDirCheck:   "directory-check",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= numStages {
		return "unknown"
	}
	return stageNames[s]
}

// task is a unit of work owned by exactly one worker once claimed.
// Path-only stages leave file zero; read and yield-check carry info, and yield-check
// also carries the read content.
type task struct {
	stage Stage
	path  string
	info  os.FileInfo
	file  File
}

func dirTask(stage Stage, path string) task { return task{stage: stage, path: path} }

func fileTask(stage Stage, path string, info os.FileInfo) task {
	return task{stage: stage, path: path, info: info}
}

func yieldTask(f File) task { return task{stage: StageYieldCheck, path: f.Path, info: f.Info, file: f} }
