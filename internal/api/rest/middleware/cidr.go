package middleware

import (
	"net"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/config"
)

// TrustedNetHandler restricts access to clients from a configured subnet.
type TrustedNetHandler struct {
	IPNet *net.IPNet
}

// NewTrustedNetHandler initializes a new trusted network handler. An empty or malformed subnet
// leaves the handler unresolved and every request is rejected.
func NewTrustedNetHandler(cfg *config.ServerConfig) *TrustedNetHandler {
	_, ipnet, err := net.ParseCIDR(cfg.TrustedSubnet)
	if err != nil {
		log.Println("Trusted network was not initialized:", err)
		return &TrustedNetHandler{}
	}
	return &TrustedNetHandler{IPNet: ipnet}
}

// Resolved reports whether a trusted subnet is configured.
func (tn *TrustedNetHandler) Resolved() bool {
	return tn.IPNet != nil
}

// TrustedNetworkHandler lets a request through when its remote address lies in the trusted subnet.
// A peer inside the subnet is treated as a proxy: when it sets X-Real-IP or X-Forwarded-For, the
// forwarded client address must lie in the subnet as well.
func (tn *TrustedNetHandler) TrustedNetworkHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !tn.Resolved() || !tn.trusted(r) {
			log.WithFields(log.Fields{"remote": r.RemoteAddr, "path": r.URL.Path}).Warn("Trusted subnet access violation")
			http.Error(w, "Trusted subnet access violation", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (tn *TrustedNetHandler) trusted(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}
	if ip := net.ParseIP(host); ip == nil || !tn.IPNet.Contains(ip) {
		return false
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		ip := net.ParseIP(strings.TrimSpace(realIP))
		return ip != nil && tn.IPNet.Contains(ip)
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip := net.ParseIP(strings.TrimSpace(strings.Split(forwarded, ",")[0]))
		return ip != nil && tn.IPNet.Contains(ip)
	}
	return true
}
