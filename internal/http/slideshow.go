package http

import (
	"encoding/json"
	"html/template"
	nethttp "net/http"
	"strconv"

	"github.com/claes/kiloview/internal/httputil"
	"github.com/claes/kiloview/internal/media"
)

type slideshowData struct {
	Title   string
	Icon    string
	Type    string
	Found   bool
	Entries template.JS
}

func (s *server) handleSlideshow(w nethttp.ResponseWriter, r *nethttp.Request) {
	typ, ok := media.ParseType(r.PathValue("media_type"))
	if !ok {
		httputil.RespondDetail(w, nethttp.StatusNotFound, "Invalid media type")
		return
	}
	q := r.URL.Query()
	randomize := false
	if v := q.Get("randomize"); v != "" {
		var err error
		randomize, err = strconv.ParseBool(v)
		if err != nil {
			httputil.RespondDetail(w, nethttp.StatusBadRequest, "randomize must be a boolean")
			return
		}
	}

	entries, found := s.root.Slideshow(q.Get("path"), typ, randomize)
	payload, err := json.Marshal(entries)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	icon := "🖼️"
	title := "Images Slideshow"
	if typ == media.TypeVideo {
		icon = "🎬"
		title = "Videos Slideshow"
	}
	data := slideshowData{
		Title:   title,
		Icon:    icon,
		Type:    string(typ),
		Found:   found,
		Entries: template.JS(payload),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = s.slides.Execute(w, data)
}

const slideshowTpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0, user-scalable=no">
<title>{{.Icon}} {{.Title}}</title>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
html, body { width: 100%; height: 100%; overflow: hidden; background: #000; touch-action: none; }
.media-container { width: 100%; height: 100%; display: flex; align-items: center; justify-content: center; }
.media-container img, .media-container video { max-width: 100%; max-height: 100%; object-fit: contain; }
.controls {
  position: fixed; bottom: 20px; left: 50%; transform: translateX(-50%);
  padding: 15px 25px; background: rgba(30,30,30,0.9); border-radius: 50px;
  display: flex; gap: 15px; align-items: center;
  opacity: 0; transition: opacity 0.3s; z-index: 100;
}
.controls.visible { opacity: 1; }
.controls button {
  background: #444; border: none; color: white; width: 50px; height: 50px;
  font-size: 20px; border-radius: 50%; cursor: pointer;
  display: flex; align-items: center; justify-content: center;
}
.controls button:hover { background: #666; }
.controls button:active { transform: scale(0.95); }
.progress {
  position: fixed; top: 0; left: 0; right: 0; padding: 15px;
  background: linear-gradient(rgba(0,0,0,0.8), transparent);
  color: white; font-family: -apple-system, sans-serif; font-size: 14px;
  opacity: 0; transition: opacity 0.3s; z-index: 100;
}
.progress.visible { opacity: 1; }
.empty { color: #888; font-family: -apple-system, sans-serif; text-align: center; padding: 40px; }
</style>
</head>
<body>
<div class="media-container" id="container">
{{if not .Found}}<div class="empty">Directory not found</div>{{end}}
</div>
<div class="progress" id="progress"></div>
<div class="controls" id="controls">
  <button id="prev" title="Previous">⏮</button>
  <button id="play" title="Play/Pause">▶</button>
  <button id="next" title="Next">⏭</button>
  <button id="shuffle" title="Shuffle">🔀</button>
</div>
<script>
(function(){
  var mediaFiles = {{.Entries}};
  var mediaType = {{.Type}};
  var container = document.getElementById('container');
  var progress = document.getElementById('progress');
  var controls = document.getElementById('controls');
  var currentIndex = 0;
  var playing = false;
  var timer = null;
  var hideTimer = null;

  if (!mediaFiles || !mediaFiles.length) {
    if (!container.children.length) {
      container.innerHTML = '<div class="empty">No media found</div>';
    }
    return;
  }

  function mediaURL(entry) {
    return '/media/' + entry.path.split('/').map(encodeURIComponent).join('/');
  }

  function showMedia(i) {
    currentIndex = (i + mediaFiles.length) % mediaFiles.length;
    var entry = mediaFiles[currentIndex];
    container.innerHTML = '';
    var el;
    if (mediaType === 'videos') {
      el = document.createElement('video');
      el.src = mediaURL(entry);
      el.autoplay = playing;
      el.controls = false;
      el.onended = function(){ if (playing) showMedia(currentIndex + 1); };
    } else {
      el = document.createElement('img');
      el.src = mediaURL(entry);
    }
    container.appendChild(el);
    progress.textContent = (currentIndex + 1) + ' / ' + mediaFiles.length + ' — ' + entry.name;
    resetTimer();
  }

  function resetTimer() {
    if (timer) { clearTimeout(timer); timer = null; }
    if (playing && mediaType === 'images') {
      timer = setTimeout(function(){ showMedia(currentIndex + 1); }, 5000);
    }
  }

  function togglePlay() {
    playing = !playing;
    document.getElementById('play').textContent = playing ? '⏸' : '▶';
    var vid = container.querySelector('video');
    if (vid) { playing ? vid.play() : vid.pause(); }
    resetTimer();
  }

  function shuffle() {
    for (var i = mediaFiles.length - 1; i > 0; i--) {
      var j = Math.floor(Math.random() * (i + 1));
      var tmp = mediaFiles[i]; mediaFiles[i] = mediaFiles[j]; mediaFiles[j] = tmp;
    }
    showMedia(0);
  }

  function showControls() {
    controls.classList.add('visible');
    progress.classList.add('visible');
    if (hideTimer) clearTimeout(hideTimer);
    hideTimer = setTimeout(function(){
      controls.classList.remove('visible');
      progress.classList.remove('visible');
    }, 3000);
  }

  document.getElementById('prev').onclick = function(){ showMedia(currentIndex - 1); };
  document.getElementById('next').onclick = function(){ showMedia(currentIndex + 1); };
  document.getElementById('play').onclick = togglePlay;
  document.getElementById('shuffle').onclick = shuffle;

  document.onmousemove = showControls;
  document.ontouchstart = showControls;

  document.onkeydown = function(e){
    if (e.key === 'ArrowLeft') showMedia(currentIndex - 1);
    if (e.key === 'ArrowRight') showMedia(currentIndex + 1);
    if (e.key === ' ') { e.preventDefault(); togglePlay(); }
  };

  var touchStartX = 0;
  document.addEventListener('touchstart', function(e){
    touchStartX = e.touches[0].clientX;
    showControls();
  });
  document.addEventListener('touchend', function(e){
    var diff = touchStartX - e.changedTouches[0].clientX;
    if (Math.abs(diff) > 50) {
      if (diff > 0) showMedia(currentIndex + 1);
      else showMedia(currentIndex - 1);
    }
  });

  showMedia(0);
})();
</script>
</body>
</html>
`
