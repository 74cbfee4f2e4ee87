package view

import (
	"net/url"
	"strings"
	"time"

	"meetup-web/internal/model"

	"github.com/shopspring/decimal"
)

const (
	// en-US 的 toDateString / toLocaleTimeString 版面
	cardDateLayout = "Mon Jan 02 2006"
	cardTimeLayout = "3:04:05 PM"

	// en-US {weekday, month: short, day: 2-digit, year: numeric}
	detailDateLayout = "Mon, Jan 02, 2006"
	// en-US {hour, minute, second: 2-digit}
	detailTimeLayout = "03:04:05 PM"

	avatarBaseURL    = "https://ui-avatars.com/api/"
	currencySymbol   = "₹"
	hostNotAssigned  = "Not Assigned"
	displayZoneLabel = "IST"
)

func inZone(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc)
}

// FormatCardWhen 卡片上的日期時間，例如 "Sat Mar 15 2025 • 10:00:00 AM IST"
func FormatCardWhen(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	local := inZone(t, loc)
	return local.Format(cardDateLayout) + " • " + local.Format(cardTimeLayout) + " " + displayZoneLabel
}

func FormatDate(t time.Time, loc *time.Location) string {
	return inZone(t, loc).Format(detailDateLayout)
}

func FormatTime(t time.Time, loc *time.Location) string {
	return inZone(t, loc).Format(detailTimeLayout)
}

// FormatRange "{startDate} at {startTime} to {endDate} {endTime}"
func FormatRange(start, end time.Time, loc *time.Location) string {
	return FormatDate(start, loc) + " at " + FormatTime(start, loc) +
		" to " + FormatDate(end, loc) + " " + FormatTime(end, loc)
}

func FormatPrice(amount decimal.Decimal) string {
	return currencySymbol + " " + amount.String()
}

// ResolveHost 第一位 isHost 講者的角色，沒有則為 "Not Assigned"
func ResolveHost(speakers []model.Speaker) string {
	for _, s := range speakers {
		if s.IsHost {
			return s.Role
		}
	}
	return hostNotAssigned
}

// AvatarURL 優先使用 photoUrl，否則以姓名前兩段產生 ui-avatars 頭像
func AvatarURL(s model.Speaker) string {
	if s.PhotoURL != "" {
		return s.PhotoURL
	}

	var first, last string
	fields := strings.Fields(s.Name)
	if len(fields) > 0 {
		first = fields[0]
	}
	if len(fields) > 1 {
		last = fields[1]
	}

	return avatarBaseURL + "?name=" + url.QueryEscape(first) + "+" + url.QueryEscape(last) +
		"&background=random&size=100"
}
