package metrics

import (
	"time"

	"beltempo/pkg/http"
	"beltempo/pkg/log"
	"beltempo/pkg/msg"
)

// UpstreamLogger logs outbound calls through pkg/log and records them as upstream metrics.
// Headers are never logged since they carry provider keys.
type UpstreamLogger struct {
	upstream string
}

var _ http.HTTPLogger = (*UpstreamLogger)(nil)

func NewUpstreamLogger(upstream string) *UpstreamLogger {
	return &UpstreamLogger{upstream: upstream}
}

func (l *UpstreamLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debugw("Calling upstream", "upstream", l.upstream, "method", method, "url", url)
}

func (l *UpstreamLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	RecordUpstreamCall(l.upstream, httpStatus, time.Duration(latency)*time.Millisecond)
	log.Debugw(msg.GetMessage("upstream.call-end", method, url, httpStatus, latency), "upstream", l.upstream)
}

func (l *UpstreamLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	RecordUpstreamCall(l.upstream, httpStatus, time.Duration(latency)*time.Millisecond)
	log.Warnw(msg.GetMessage("upstream.call-fail", method, url, httpStatus, latency, err),
		"upstream", l.upstream,
		"response", responseBody)
}
