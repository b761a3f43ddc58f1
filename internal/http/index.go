package http

import (
	"io"
	nethttp "net/http"
)

func (s *server) handleIndex(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexPage)
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Kiloview Media Server</title>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  background: #1a1a2e; color: #eee; min-height: 100vh; padding: 20px;
}
h1 { text-align: center; margin-bottom: 30px; color: #00d9ff; }
.container { max-width: 800px; margin: 0 auto; }
.path-display {
  background: #16213e; padding: 15px; border-radius: 8px;
  margin-bottom: 20px; overflow-x: auto;
}
.path-display a { color: #00d9ff; text-decoration: none; }
.path-display a:hover { text-decoration: underline; }
.breadcrumb { color: #888; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(150px, 1fr)); gap: 15px; }
.item {
  background: #16213e; border-radius: 8px; padding: 20px; text-align: center;
  cursor: pointer; transition: transform 0.2s, background 0.2s;
}
.item:hover { transform: scale(1.05); background: #1f3460; }
.item-icon { font-size: 48px; margin-bottom: 10px; }
.item-name { font-size: 14px; word-break: break-word; }
.item-count { font-size: 12px; color: #888; margin-top: 5px; }
.media-links { display: flex; gap: 10px; justify-content: center; margin-top: 20px; flex-wrap: wrap; }
.media-link {
  background: #00d9ff; color: #1a1a2e; padding: 12px 24px; border-radius: 8px;
  text-decoration: none; font-weight: bold; transition: transform 0.2s;
}
.media-link:hover { transform: scale(1.05); }
.empty { text-align: center; color: #888; padding: 40px; }
.error { color: #ff6b6b; text-align: center; padding: 20px; }
</style>
</head>
<body>
<div class="container">
  <h1>📁 Kiloview Media Server</h1>
  <div id="content"><p class="empty">Loading...</p></div>
</div>
<script>
var currentPath = '';

function esc(s) {
  return String(s)
    .replace(/&/g, '&amp;').replace(/</g, '&lt;').replace(/>/g, '&gt;')
    .replace(/"/g, '&quot;').replace(/'/g, '&#39;');
}

async function loadDirectory(path) {
  path = path || '';
  var content = document.getElementById('content');
  content.innerHTML = '<p class="empty">Loading...</p>';
  try {
    var response = await fetch('/api/directories' + (path ? '?path=' + encodeURIComponent(path) : ''));
    if (!response.ok) {
      var problem = await response.json();
      content.innerHTML = '<p class="error">' + esc(problem.detail || response.status) + '</p>';
      return;
    }
    var data = await response.json();
    currentPath = data.path;
    var html = '';

    if (data.path) {
      html += '<div class="path-display"><span class="breadcrumb">';
      html += '<a href="#" onclick="loadDirectory(\'\'); return false;">Root</a>';
      var crumb = '';
      var parts = data.path.split('/').filter(function(p){ return p; });
      for (var i = 0; i < parts.length; i++) {
        crumb += (crumb ? '/' : '') + parts[i];
        html += ' / <a href="#" onclick="loadDirectory(\'' + esc(crumb) + '\'); return false;">' + esc(parts[i]) + '</a>';
      }
      html += '</span></div>';
    }

    html += '<div class="grid">';
    for (var d = 0; d < data.directories.length; d++) {
      var dir = data.directories[d];
      html += '<div class="item" onclick="loadDirectory(\'' + esc(dir.path) + '\')">';
      html += '<div class="item-icon">📁</div>';
      html += '<div class="item-name">' + esc(dir.name) + '</div>';
      html += '<div class="item-count">🖼️ ' + dir.image_count + ' · 🎬 ' + dir.video_count + '</div>';
      html += '</div>';
    }
    html += '</div>';

    if (!data.directories.length && !data.image_count && !data.video_count) {
      html += '<p class="empty">Nothing here</p>';
    }

    var links = '';
    var q = '?path=' + encodeURIComponent(data.path);
    if (data.image_count > 0) {
      links += '<a class="media-link" href="/slideshow/images' + q + '">🖼️ ' + data.image_count + ' Images</a>';
      links += '<a class="media-link" href="/slideshow/images' + q + '&randomize=true">🔀 Shuffle Images</a>';
    }
    if (data.video_count > 0) {
      links += '<a class="media-link" href="/slideshow/videos' + q + '">🎬 ' + data.video_count + ' Videos</a>';
      links += '<a class="media-link" href="/slideshow/videos' + q + '&randomize=true">🔀 Shuffle Videos</a>';
    }
    if (links) html += '<div class="media-links">' + links + '</div>';

    content.innerHTML = html;
  } catch (e) {
    content.innerHTML = '<p class="error">Failed to load directory</p>';
  }
}

loadDirectory('');
</script>
</body>
</html>
`
