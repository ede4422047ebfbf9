package renderer

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
)

// The calendar grid covers 09:00 to 21:00, one pixel per minute.
const (
	viewStartMin = schedule.DefaultViewStartMin
	viewEndMin   = 21 * 60
)

type blockView struct {
	CourseNumber string
	Title        string
	TimeLabel    string
	Color        string
	Index        int // position in the embedded course JSON, for the modal
	Top          int
	Height       int
	LeftPct      float64
	WidthPct     float64
}

type dayView struct {
	Name   string
	Blocks []blockView
}

type conflictView struct {
	Location string
	Lines    []string
}

type pageData struct {
	Term            string
	GeneratedAt     string
	CourseCount     int
	InstructorCount int
	HourLabels      []string
	Days            []dayView
	Conflicts       []conflictView
	Unassigned      []string
	CoursesJSON     template.JS
}

// GenerateHTML renders the engine output as a standalone interactive
// calendar page: a Monday-to-Friday grid with overlapping courses packed
// side by side, a room conflict banner, and a click-for-details modal fed
// by the embedded course data.
func GenerateHTML(result schedule.Result, term string, w io.Writer) error {
	colors := InstructorColors(result.Canonical)

	indexByCRN := make(map[string]int, len(result.Canonical))
	for i, r := range result.Canonical {
		indexByCRN[r.CRN] = i
	}

	var days []dayView
	for _, d := range schedule.DayLetters {
		day := string(d)
		view := dayView{Name: schedule.DayName(day)}
		for _, b := range result.LayoutsByDay[day] {
			width := 100.0 / float64(b.TotalColumns)
			view.Blocks = append(view.Blocks, blockView{
				CourseNumber: b.Record.CourseNumber,
				Title:        b.Record.Title,
				TimeLabel:    minutesToClock(b.Record.StartMin),
				Color:        colors[b.Record.Instructor],
				Index:        indexByCRN[b.Record.CRN],
				Top:          b.TopOffsetMin,
				Height:       b.DurationMin,
				LeftPct:      float64(b.Column) * width,
				WidthPct:     width,
			})
		}
		days = append(days, view)
	}

	var conflicts []conflictView
	for _, g := range result.Conflicts {
		view := conflictView{Location: g.Location}
		for _, r := range g.Records {
			view.Lines = append(view.Lines, fmt.Sprintf("%s %s %s - %s (%s)",
				r.CourseNumber, r.Days, minutesToClock(r.StartMin), minutesToClock(r.EndMin), r.Instructor))
		}
		conflicts = append(conflicts, view)
	}

	var unassigned []string
	for _, r := range result.Unassigned {
		unassigned = append(unassigned, fmt.Sprintf("%s %s", r.CourseNumber, r.Title))
	}

	var hours []string
	for h := viewStartMin / 60; h <= viewEndMin/60; h++ {
		hours = append(hours, minutesToClock(h*60))
	}

	coursesJSON, err := json.Marshal(result.Canonical)
	if err != nil {
		return fmt.Errorf("failed to serialize course data: %w", err)
	}

	instructors := make(map[string]bool)
	for _, r := range result.Canonical {
		instructors[r.Instructor] = true
	}

	data := pageData{
		Term:            term,
		GeneratedAt:     time.Now().Format("January 2, 2006"),
		CourseCount:     len(result.Canonical),
		InstructorCount: len(instructors),
		HourLabels:      hours,
		Days:            days,
		Conflicts:       conflicts,
		Unassigned:      unassigned,
		CoursesJSON:     template.JS(coursesJSON),
	}

	return calendarTemplate.Execute(w, data)
}

// minutesToClock formats minutes since midnight as "09:35 AM".
func minutesToClock(min int) string {
	hour := min / 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d %s", display, min%60, period)
}

var calendarTemplate = template.Must(template.New("calendar").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>GWU Courses - {{.Term}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f8f9fa; padding: 20px; }
.header { background: linear-gradient(135deg, #1a73e8 0%, #4285f4 100%); color: white; padding: 25px; border-radius: 8px; margin-bottom: 20px; }
.header h1 { font-size: 28px; margin-bottom: 8px; }
.header p { font-size: 14px; opacity: 0.95; }
.stats { background-color: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; display: flex; gap: 40px; }
.stats-item { color: #5f6368; font-size: 14px; }
.stats-number { font-size: 32px; font-weight: 700; color: #1a73e8; display: block; margin-bottom: 5px; }
.conflicts { background-color: #fff3cd; border: 1px solid #ffe69c; padding: 16px 20px; border-radius: 8px; margin-bottom: 20px; }
.conflicts h2 { font-size: 16px; color: #664d03; margin-bottom: 8px; }
.conflicts ul { margin-left: 20px; font-size: 13px; color: #664d03; }
.calendar-container { background-color: white; border-radius: 8px; overflow-x: auto; }
.calendar-header { display: grid; grid-template-columns: 80px repeat(5, minmax(180px, 1fr)); border-bottom: 2px solid #e0e0e0; background-color: #f8f9fa; }
.day-header { padding: 15px 10px; text-align: center; font-weight: 600; font-size: 14px; color: #3c4043; border-right: 1px solid #e0e0e0; }
.calendar-body { display: grid; grid-template-columns: 80px repeat(5, minmax(180px, 1fr)); position: relative; }
.time-column { border-right: 2px solid #e0e0e0; background-color: #fafafa; }
.time-slot { height: 60px; padding: 8px; font-size: 12px; color: #70757a; text-align: right; border-bottom: 1px solid #f0f0f0; }
.day-column { border-right: 1px solid #e0e0e0; position: relative; min-height: 780px; }
.course-block { position: absolute; border-radius: 5px; padding: 6px; cursor: pointer; overflow: hidden; color: white; border: 1px solid rgba(255,255,255,0.3); }
.course-number { font-weight: 700; font-size: 11px; margin-bottom: 3px; }
.course-name { font-size: 10px; line-height: 1.3; overflow: hidden; }
.course-time { font-size: 9px; margin-top: 4px; font-weight: 600; }
.modal { display: none; position: fixed; top: 0; left: 0; width: 100%; height: 100%; background-color: rgba(0,0,0,0.5); z-index: 1000; }
.modal-content { position: absolute; top: 50%; left: 50%; transform: translate(-50%, -50%); background-color: white; border-radius: 12px; padding: 30px; max-width: 550px; width: 90%; }
.detail-row { display: flex; margin-bottom: 12px; }
.detail-label { font-weight: 600; color: #5f6368; min-width: 110px; font-size: 14px; }
.detail-value { color: #202124; font-size: 14px; flex: 1; }
.close-btn { position: absolute; top: 16px; right: 20px; font-size: 28px; color: #5f6368; cursor: pointer; }
</style>
</head>
<body>
<div class="header">
<h1>GWU Courses - {{.Term}}</h1>
<p>Interactive Course Schedule | Generated on {{.GeneratedAt}}</p>
</div>

<div class="stats">
<div class="stats-item"><span class="stats-number">{{.CourseCount}}</span><span>Total Courses</span></div>
<div class="stats-item"><span class="stats-number">{{.InstructorCount}}</span><span>Instructors</span></div>
</div>

{{if .Conflicts}}
<div class="conflicts">
<h2>Room conflicts detected</h2>
{{range .Conflicts}}
<p><strong>{{.Location}}</strong></p>
<ul>{{range .Lines}}<li>{{.}}</li>{{end}}</ul>
{{end}}
</div>
{{end}}

{{if .Unassigned}}
<div class="conflicts">
<h2>Courses without an assigned room</h2>
<ul>{{range .Unassigned}}<li>{{.}}</li>{{end}}</ul>
</div>
{{end}}

<div class="calendar-container">
<div class="calendar-header">
<div class="day-header"></div>
{{range .Days}}<div class="day-header">{{.Name}}</div>{{end}}
</div>
<div class="calendar-body">
<div class="time-column">
{{range .HourLabels}}<div class="time-slot">{{.}}</div>{{end}}
</div>
{{range .Days}}
<div class="day-column">
{{range .Blocks}}<div class="course-block" style="top: {{.Top}}px; height: {{.Height}}px; left: {{printf "%.2f" .LeftPct}}%; width: calc({{printf "%.2f" .WidthPct}}% - 4px); background-color: {{.Color}};" onclick="showModal({{.Index}})">
<div class="course-number">{{.CourseNumber}}</div>
<div class="course-name">{{.Title}}</div>
<div class="course-time">{{.TimeLabel}}</div>
</div>{{end}}
</div>
{{end}}
</div>
</div>

<div id="modal" class="modal">
<div class="modal-content">
<span class="close-btn" onclick="closeModal()">&times;</span>
<div id="modalBody"></div>
</div>
</div>

<script>
const courses = {{.CoursesJSON}};
function row(label, value) {
    return '<div class="detail-row"><div class="detail-label">' + label + ':</div><div class="detail-value">' + value + '</div></div>';
}
function showModal(index) {
    const c = courses[index];
    document.getElementById('modalBody').innerHTML =
        '<h2>' + c.course_number + ' - ' + c.title + '</h2><br>' +
        row('CRN', c.crn) + row('Status', c.status) + row('Instructor', c.instructor) +
        row('Days', c.days) + row('Building', c.building) + row('Room', c.room) +
        row('Credits', c.credits) + row('Semester', c.dates);
    document.getElementById('modal').style.display = 'block';
}
function closeModal() {
    document.getElementById('modal').style.display = 'none';
}
window.onclick = function(event) {
    if (event.target === document.getElementById('modal')) closeModal();
}
document.addEventListener('keydown', function(event) {
    if (event.key === 'Escape') closeModal();
});
</script>
</body>
</html>`))
