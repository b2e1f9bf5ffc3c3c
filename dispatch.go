package walker

import "time"

// execute runs the action of the task's stage and enqueues downstream work.
func (w *worker) execute(t task) error {
	switch t.stage {
	case StageYieldCheck:
		return w.yieldCheck(t)
	case StageRead:
		return w.read(t)
	case StageFileCheck:
		return w.fileCheck(t)
	case StageDirStat:
		return w.dirStat(t)
	default:
		return w.dirCheck(t)
	}
}

func (w *worker) yieldCheck(t task) error {
	ok, err := evalFilter(func() (bool, error) { return w.run.yield(t.file) })
	if err != nil {
		return newStageError(StageYieldCheck, t.path, err)
	}
	if !ok {
		w.run.inst.filesFiltered.Add(1)
		return nil
	}
	if w.state.emit(t.file) {
		w.run.inst.filesYielded.Add(1)
	}
	return nil
}

func (w *worker) read(t task) error {
	started := time.Now()
	data, err := readFile(w.run.fs, t.path)
	if err != nil {
		return newStageError(StageRead, t.path, err)
	}
	w.run.inst.readDuration.Record(time.Since(started).Seconds())
	w.run.inst.filesRead.Add(1)
	w.run.inst.bytesRead.Add(int64(len(data)))

	w.state.enqueue(yieldTask(File{Path: t.path, Info: t.info, Content: newContent(data)}))
	return nil
}

func (w *worker) fileCheck(t task) error {
	ok, err := evalFilter(func() (bool, error) { return w.run.readFilter(t.path, t.info) })
	if err != nil {
		return newStageError(StageFileCheck, t.path, err)
	}
	if !ok {
		w.run.inst.filesSkipped.Add(1)
		return nil
	}
	w.state.enqueue(fileTask(StageRead, t.path, t.info))
	return nil
}

func (w *worker) dirStat(t task) error {
	if !w.state.markListed(t.path) {
		w.log.V(1).Info("directory already listed", "path", t.path)
		return nil
	}
	entries, err := w.run.fs.ReadDir(t.path)
	if err != nil {
		return newStageError(StageDirStat, t.path, err)
	}
	w.run.inst.dirsListed.Add(1)

	next := make([]task, 0, len(entries))
	for _, e := range entries {
		p := w.run.fs.Join(t.path, e.Name())
		switch {
		case e.IsDir():
			next = append(next, dirTask(StageDirCheck, p))
		case e.Mode().IsRegular():
			next = append(next, fileTask(StageFileCheck, p, e))
		default:
			w.log.V(1).Info("entry skipped, not a regular file or directory", "path", p, "mode", e.Mode().String())
		}
	}
	w.state.enqueue(next...)
	return nil
}

func (w *worker) dirCheck(t task) error {
	ok, err := evalFilter(func() (bool, error) { return w.run.explore(t.path) })
	if err != nil {
		return newStageError(StageDirCheck, t.path, err)
	}
	if !ok {
		w.run.inst.dirsSkipped.Add(1)
		w.log.V(1).Info("directory skipped", "path", t.path)
		return nil
	}
	w.state.enqueue(dirTask(StageDirStat, t.path))
	return nil
}
