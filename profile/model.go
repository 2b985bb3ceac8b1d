package profile

import "time"

const (
	// HistoryCap bounds the per-user confidence history ledger. The oldest
	// record is evicted first once the cap is reached.
	HistoryCap = 50

	// DigestCap bounds the per-channel ring of recent sample digests.
	DigestCap = 20

	// DigestSampleCap bounds how many raw values a single digest may carry.
	DigestSampleCap = 10

	// Exponential smoothing split for baseline merges: the stored value keeps
	// weight smoothingOld, the incoming batch mean contributes smoothingNew.
	smoothingOld = 0.7
	smoothingNew = 0.3
)

// Record is one entry in the per-user confidence history ledger: the fused
// score of a single scoring call together with its per-channel breakdown.
type Record struct {
	ID            string         `json:"id"`
	Timestamp     time.Time      `json:"timestamp"`
	Score         int            `json:"score"`
	Confidence    string         `json:"confidence"`
	ChannelScores map[string]int `json:"channel_scores"`
}

// ChannelBaseline holds the adaptive baseline values and the bounded digest
// ring for one behavioral channel.
type ChannelBaseline struct {
	Metrics map[string]float64 `json:"metrics"`
	Digests [][]float64        `json:"digests"`
}

// Profile is the full behavioral state for one user. It is exclusively owned
// by the engine and mutated only inside Store.Update callbacks.
type Profile struct {
	UserID       string                      `json:"user_id"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
	SessionCount int                         `json:"session_count"`
	Channels     map[string]*ChannelBaseline `json:"channels"`
	History      []Record                    `json:"history"`
}

// NewProfile creates an empty profile for the given user.
func NewProfile(userID string, now time.Time) *Profile {
	return &Profile{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		Channels:  make(map[string]*ChannelBaseline),
	}
}

// Channel returns the baseline for the named channel, creating it on first
// touch.
func (p *Profile) Channel(name string) *ChannelBaseline {
	if p.Channels == nil {
		p.Channels = make(map[string]*ChannelBaseline)
	}
	b, ok := p.Channels[name]
	if !ok {
		b = &ChannelBaseline{Metrics: make(map[string]float64)}
		p.Channels[name] = b
	}
	return b
}

// Baseline returns the stored metric map for the named channel, or nil when
// the channel has never been observed. The returned map must not be mutated
// outside a Store.Update callback.
func (p *Profile) Baseline(name string) map[string]float64 {
	if p == nil || p.Channels == nil {
		return nil
	}
	b, ok := p.Channels[name]
	if !ok {
		return nil
	}
	return b.Metrics
}

// Merge folds a batch's metric means into the stored baseline. An existing
// value is smoothed (old*0.7 + batch*0.3); a first observation becomes the
// baseline directly.
func (b *ChannelBaseline) Merge(metrics map[string]float64) {
	if b.Metrics == nil {
		b.Metrics = make(map[string]float64, len(metrics))
	}
	for name, value := range metrics {
		old, ok := b.Metrics[name]
		if ok {
			b.Metrics[name] = old*smoothingOld + value*smoothingNew
		} else {
			b.Metrics[name] = value
		}
	}
}

// AppendDigest pushes a size-capped digest of raw batch values onto the
// channel's ring, evicting the oldest digest past DigestCap.
func (b *ChannelBaseline) AppendDigest(values []float64) {
	if len(values) == 0 {
		return
	}
	if len(values) > DigestSampleCap {
		values = values[:DigestSampleCap]
	}
	digest := make([]float64, len(values))
	copy(digest, values)

	b.Digests = append(b.Digests, digest)
	if len(b.Digests) > DigestCap {
		b.Digests = b.Digests[len(b.Digests)-DigestCap:]
	}
}

// AppendRecord appends one confidence record to the history ledger and trims
// to HistoryCap, oldest first.
func (p *Profile) AppendRecord(r Record) {
	p.History = append(p.History, r)
	if len(p.History) > HistoryCap {
		p.History = p.History[len(p.History)-HistoryCap:]
	}
}

// HistorySnapshot returns a copy of the ledger in insertion order, safe to
// hand to callers outside the store's critical section.
func (p *Profile) HistorySnapshot() []Record {
	if p == nil || len(p.History) == 0 {
		return nil
	}
	out := make([]Record, len(p.History))
	copy(out, p.History)
	return out
}
