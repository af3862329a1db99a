package adapter

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/models"
)

const (
	healthPath = "/api/health"

	// downlinkStep matches the 25 kbps granularity browsers report.
	downlinkStep = 0.025

	// minTimedBodySize is the smallest body whose transfer time says anything
	// about bandwidth. Smaller bodies keep the previous estimate.
	minTimedBodySize = 32 << 10
)

// HTTPNetworkProbe estimates connection quality by fetching a probe URL.
// Latency is the time to the first response byte, bandwidth is the body size
// over the body transfer time. Bandwidth is only measured on bodies of at
// least 32 KiB, so a sized payload behind ProbeURL is needed for it to move
// off the default. Any transport failure reads as offline.
type HTTPNetworkProbe struct {
	client   *utils.HTTPClient
	url      string
	saveData bool
	logger   *logger.Logger

	mu           sync.Mutex
	lastDownlink float64
	now          func() time.Time
}

// NewHTTPNetworkProbe probes cfg.ProbeURL, or the sync server's health
// endpoint when no probe URL is configured.
func NewHTTPNetworkProbe(cfg config.Adapter, log *logger.Logger) (*HTTPNetworkProbe, error) {
	probeURL := cfg.ProbeURL
	if probeURL == "" {
		baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
		if err != nil {
			return nil, err
		}
		probeURL = baseURL + healthPath
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.ProbeTimeout)

	return &HTTPNetworkProbe{
		client:       client,
		url:          probeURL,
		saveData:     cfg.SaveData,
		logger:       log,
		lastDownlink: models.DefaultNetworkCondition(time.Now()).Downlink,
		now:          time.Now,
	}, nil
}

// Read implements interval.NetworkReader.
func (p *HTTPNetworkProbe) Read(ctx context.Context) (models.NetworkCondition, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		EnableTrace().
		Get(p.url)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "HTTPNetworkProbe.Read").Str("url", p.url).Msg("probe failed, reporting offline")
		return models.NetworkCondition{
			IsOnline:  false,
			SaveData:  p.saveData,
			Timestamp: p.now(),
		}, nil
	}

	trace := resp.Request.TraceInfo()

	rtt := trace.ServerTime
	if rtt <= 0 {
		rtt = trace.TotalTime
	}

	downlink := p.estimateDownlink(len(resp.Body()), trace.ResponseTime)

	return models.NetworkCondition{
		IsOnline:      true,
		EffectiveType: models.ClassifyEffectiveType(downlink, rtt),
		Downlink:      downlink,
		RTT:           rtt.Round(time.Millisecond),
		SaveData:      p.saveData,
		Timestamp:     p.now(),
	}, nil
}

// estimateDownlink converts a transfer into Mbps. Transfers too small to
// time keep the previous estimate.
func (p *HTTPNetworkProbe) estimateDownlink(size int, transfer time.Duration) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if size < minTimedBodySize || transfer <= 0 {
		return p.lastDownlink
	}

	mbps := float64(size) * 8 / transfer.Seconds() / 1e6
	mbps = math.Round(mbps/downlinkStep) * downlinkStep
	if mbps < downlinkStep {
		mbps = downlinkStep
	}

	p.lastDownlink = mbps
	return mbps
}
