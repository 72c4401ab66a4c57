package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/skyframe/skyframe/internal/dom"
)

type pageData struct {
	Title      string
	Nonce      string
	Loading    bool
	GalleryURL string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style nonce="{{.Nonce}}">
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            background: #0b1020;
            color: #e2e8f0;
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            min-height: 100vh;
        }
        body.scroll-locked { overflow: hidden; }
        .container { max-width: 1200px; margin: 0 auto; padding: 2rem 1rem; }
        header { display: flex; align-items: center; justify-content: space-between; gap: 1rem; flex-wrap: wrap; }
        h1 { font-size: 1.75rem; font-weight: 600; }
        button, .button {
            background: #2563eb;
            color: #fff;
            padding: 0.625rem 1.25rem;
            border: none;
            border-radius: 6px;
            font-size: 0.95rem;
            font-weight: 600;
            cursor: pointer;
        }
        button:disabled { opacity: 0.6; cursor: progress; }
        .did-you-know {
            margin-top: 1.5rem;
            padding: 1rem 1.25rem;
            background: #111a33;
            border-left: 4px solid #f59e0b;
            border-radius: 6px;
            font-size: 0.9rem;
        }
        .did-you-know strong { color: #f59e0b; margin-right: 0.5rem; }
        .gallery {
            margin-top: 2rem;
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
            gap: 1.25rem;
        }
        .gallery-item {
            position: relative;
            background: #111a33;
            border-radius: 8px;
            overflow: hidden;
            cursor: pointer;
            transition: transform 0.15s;
        }
        .gallery-item:hover, .gallery-item:focus { transform: scale(1.02); outline: 2px solid #2563eb; }
        .gallery-item img { width: 100%; height: 200px; object-fit: cover; display: block; }
        .gallery-item h3 { font-size: 1rem; padding: 0.75rem 0.75rem 0.25rem; }
        .gallery-item p, .gallery-item a { display: block; font-size: 0.8rem; color: #94a3b8; padding: 0 0.75rem 0.75rem; }
        .gallery-item a { color: #60a5fa; padding-top: 0.75rem; }
        .video-badge {
            position: absolute;
            top: 80px;
            left: 50%;
            transform: translateX(-50%);
            background: rgba(0, 0, 0, 0.6);
            border-radius: 50%;
            width: 48px;
            height: 48px;
            line-height: 48px;
            text-align: center;
            font-size: 1.25rem;
        }
        .placeholder { grid-column: 1 / -1; text-align: center; padding: 4rem 1rem; color: #94a3b8; }
        .placeholder-icon { font-size: 2.5rem; margin-bottom: 0.75rem; }
        .placeholder .error { color: #ef4444; }
        .modal { display: none; position: fixed; inset: 0; z-index: 10; }
        .modal.is-open { display: flex; align-items: center; justify-content: center; }
        .modal-overlay { position: absolute; inset: 0; background: rgba(0, 0, 0, 0.8); }
        .modal-content {
            position: relative;
            max-width: 900px;
            width: 92%;
            max-height: 92vh;
            overflow-y: auto;
            background: #111a33;
            border-radius: 8px;
            padding: 1.5rem;
        }
        .modal-close {
            position: absolute;
            top: 0.5rem;
            right: 0.75rem;
            color: #e2e8f0;
            font-size: 1.75rem;
            text-decoration: none;
        }
        #modalMedia img { width: 100%; border-radius: 6px; }
        #modalMedia iframe { width: 100%; aspect-ratio: 16 / 9; border: 0; border-radius: 6px; }
        #modalMedia a { color: #60a5fa; }
        #modalTitle { margin-top: 1rem; font-size: 1.35rem; }
        #modalDate { margin-top: 0.25rem; color: #94a3b8; font-size: 0.85rem; }
        #modalExplanation { margin-top: 1rem; line-height: 1.6; font-size: 0.95rem; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Title}}</h1>
            <form id="loadForm" method="get" action="{{.GalleryURL}}">
                <button id="getImageBtn" type="submit">Get Space Images</button>
            </form>
        </header>
        <div class="did-you-know"><strong>Did you know?</strong><span id="didYouKnowText"></span></div>
        <div id="gallery" class="gallery">
            {{- if .Loading}}
            <div class="placeholder"><div class="placeholder-icon">🔄</div><p>Loading space photos…</p></div>
            {{- else}}
            <div class="placeholder"><div class="placeholder-icon">🔭</div><p>Click the button to load space photos.</p></div>
            {{- end}}
        </div>
    </div>
    <div id="lightboxModal" class="modal" aria-hidden="true" role="dialog" aria-modal="true" aria-labelledby="modalTitle">
        <a id="modalOverlay" class="modal-overlay" href="{{.GalleryURL}}" tabindex="-1" aria-label="Close"></a>
        <div class="modal-content">
            <a id="modalClose" class="modal-close" href="{{.GalleryURL}}" role="button" aria-label="Close">&times;</a>
            <div id="modalMedia"></div>
            <h2 id="modalTitle"></h2>
            <p id="modalDate"></p>
            <p id="modalExplanation"></p>
        </div>
    </div>
    <script nonce="{{.Nonce}}">
        (function() {
            function go(card) {
                var target = card.getAttribute('data-open');
                if (target) { window.location.href = target; }
            }
            document.querySelectorAll('.gallery-item').forEach(function(card) {
                card.addEventListener('click', function(e) {
                    if (e.target.closest('a')) { return; }
                    go(card);
                });
                card.addEventListener('keydown', function(e) {
                    if (e.key === 'Enter' || e.key === ' ') {
                        e.preventDefault();
                        go(card);
                    }
                });
            });
            document.addEventListener('keydown', function(e) {
                var modal = document.getElementById('lightboxModal');
                var close = document.getElementById('modalClose');
                if (e.key === 'Escape' && modal && close && modal.classList.contains('is-open')) {
                    window.location.href = close.getAttribute('href');
                }
            });
            var form = document.getElementById('loadForm');
            var btn = document.getElementById('getImageBtn');
            if (form && btn) {
                form.addEventListener('submit', function() {
                    btn.disabled = true;
                    btn.textContent = 'Loading...';
                });
            }
        })();
    </script>
</body>
</html>`))

func newDocument(data pageData) (*dom.Document, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return dom.Parse(&buf)
}
