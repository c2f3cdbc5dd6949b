package export

import (
	"html/template"
	"io"

	"github.com/san-kum/sortviz/internal/frame"
)

var playerTemplate = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { background: {{.Background}}; color: #ddd; font-family: monospace; margin: 2em; }
canvas { background: {{.Background}}; border: 1px solid #333; display: block; }
.controls { margin-top: 1em; }
button { background: #222; color: #ddd; border: 1px solid #444; padding: 0.3em 0.8em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<canvas id="chart" width="{{.Width}}" height="{{.Height}}"></canvas>
<div class="controls">
<button id="prev">&lt;</button>
<button id="play">pause</button>
<button id="next">&gt;</button>
<input id="scrub" type="range" min="0" max="{{.Last}}" value="0">
<span id="step"></span>
</div>
<script>
const frames = {{.Frames}};
const colors = {{.Colors}};
const interval = {{.Interval}};
const canvas = document.getElementById("chart");
const ctx = canvas.getContext("2d");
let hi = 0;
for (const f of frames) for (const b of f) hi = Math.max(hi, b.v);
let idx = 0;
let timer = null;

function draw() {
  const f = frames[idx];
  ctx.clearRect(0, 0, canvas.width, canvas.height);
  if (f.length > 0) {
    const w = canvas.width / f.length;
    f.forEach((b, i) => {
      const h = hi > 0 ? Math.max(1, b.v / hi * canvas.height) : canvas.height;
      ctx.fillStyle = colors[b.r] || colors["default"];
      ctx.fillRect(i * w + w * 0.05, canvas.height - h, w * 0.9, h);
    });
  }
  document.getElementById("scrub").value = idx;
  document.getElementById("step").textContent = (idx + 1) + " / " + frames.length;
}

function tick() {
  if (idx < frames.length - 1) { idx++; draw(); } else { stop(); }
}
function start() { timer = setInterval(tick, interval); document.getElementById("play").textContent = "pause"; }
function stop() { clearInterval(timer); timer = null; document.getElementById("play").textContent = "play"; }

document.getElementById("play").onclick = () => {
  if (timer) { stop(); } else { if (idx === frames.length - 1) idx = 0; start(); }
};
document.getElementById("prev").onclick = () => { stop(); idx = Math.max(0, idx - 1); draw(); };
document.getElementById("next").onclick = () => { stop(); idx = Math.min(frames.length - 1, idx + 1); draw(); };
document.getElementById("scrub").oninput = (e) => { stop(); idx = Number(e.target.value); draw(); };

draw();
start();
</script>
</body>
</html>
`))

type playerData struct {
	Title      string
	Background string
	Width      int
	Height     int
	Last       int
	Interval   int
	Frames     [][]Bar
	Colors     map[string]string
}

// HTML writes a self-contained page that plays seq at fps frames per
// second.
func HTML(w io.Writer, title string, seq frame.Sequence, fps int) error {
	if seq.Len() == 0 {
		return ErrEmptySequence
	}
	if fps <= 0 {
		fps = DefaultGIFOptions().FPS
	}

	p := DefaultPalette()
	colors := make(map[string]string)
	for _, r := range frame.Roles() {
		colors[r.String()] = p.Hex(r)
	}

	doc := NewDocument(Meta{Title: title}, seq)
	return playerTemplate.Execute(w, playerData{
		Title:      title,
		Background: hex(p.Background),
		Width:      960,
		Height:     480,
		Last:       seq.Len() - 1,
		Interval:   1000 / fps,
		Frames:     doc.Frames,
		Colors:     colors,
	})
}
