package sim

// Shared test doubles for the engine tests.

// scriptedProcess yields a fixed sequence of actions and records the
// virtual time of each resumption. After the script runs out it yields
// Done.
type scriptedProcess struct {
	name    string
	actions []Action
	idx     int
	resumes []VirtualTime
}

func (p *scriptedProcess) Name() string { return p.name }

func (p *scriptedProcess) Resume(sim *Simulator) Action {
	p.resumes = append(p.resumes, sim.Clock)
	if p.idx >= len(p.actions) {
		return Done()
	}
	a := p.actions[p.idx]
	p.idx++
	return a
}

// recordingWaker captures the wake order the stock produces, standing in
// for the simulator in resource-level tests.
type recordingWaker struct {
	woken []string
}

func (w *recordingWaker) wake(p Process) {
	w.woken = append(w.woken, p.Name())
}
