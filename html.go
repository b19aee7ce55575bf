/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
)

// lobbyHTML is the whole browser client. It speaks the same plain-text
// protocol as TCP players, one command per websocket frame.
const lobbyHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>spockbox</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; }
h1 { font-size: 1.4rem; }
#status { margin: 0.5rem 0; font-weight: bold; }
#moves button { font-size: 1rem; margin: 0.2rem; padding: 0.5rem 0.9rem; }
#table { border-collapse: collapse; margin: 1rem 0; }
#table td, #table th { border: 1px solid #999; padding: 0.3rem 0.8rem; }
#log { list-style: none; padding: 0; font-size: 0.9rem; color: #444; max-height: 14rem; overflow-y: auto; }
#log li { margin: 0.1rem 0; }
.winner { background: #cfc; }
#share img { margin-top: 0.5rem; display: block; }
</style>
</head>
<body>
<h1>spockbox</h1>
<div id="status">Connecting&hellip;</div>
<div id="moves">
<button data-move="R">Rock</button>
<button data-move="P">Paper</button>
<button data-move="S">Scissors</button>
<button data-move="L">Lizard</button>
<button data-move="K">Spock</button>
<button id="reset">Reset scores</button>
<button id="quit">Quit</button>
</div>
<table id="table"></table>
<div id="share"><a href="#" id="qr">Share this table</a></div>
<ul id="log"></ul>
<script>
const status = document.getElementById('status');
const logEl = document.getElementById('log');
const tableEl = document.getElementById('table');
const moveButtons = Array.from(document.querySelectorAll('#moves button[data-move]'));

const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');

function note(text) {
	const li = document.createElement('li');
	li.textContent = text;
	logEl.prepend(li);
}

function setMovesEnabled(enabled) {
	moveButtons.forEach(b => b.disabled = !enabled);
}

function renderResult(payload) {
	const parts = payload.split(':');
	if (parts.length !== 3) {
		note('Garbled result: ' + payload);
		return;
	}
	const winners = parts[0] === '' ? [] : parts[0].split(',').map(Number);
	const moves = parts[1] === '' ? [] : parts[1].split(',');
	const scores = parts[2] === '' ? [] : parts[2].split(',');

	let rows = '<tr><th>Seat</th><th>Move</th><th>Score</th></tr>';
	for (let i = 0; i < moves.length; i++) {
		const cls = winners.includes(i + 1) ? ' class="winner"' : '';
		rows += '<tr' + cls + '><td>Player ' + (i + 1) + '</td><td>' + moves[i] + '</td><td>' + scores[i] + '</td></tr>';
	}
	tableEl.innerHTML = rows;

	if (winners.length === 0) {
		note('Round ends in a tie.');
	} else {
		note('Round won by player ' + parts[0] + '.');
	}
}

ws.onopen = () => {
	status.textContent = 'Seated. Pick a move.';
	setMovesEnabled(true);
};

ws.onclose = () => {
	status.textContent = 'Disconnected.';
	setMovesEnabled(false);
};

ws.onmessage = (ev) => {
	const msg = ev.data.trim();
	if (msg.startsWith('RESULT:')) {
		renderResult(msg.slice(7));
		status.textContent = 'Pick a move.';
		setMovesEnabled(true);
	} else if (msg.startsWith('RESET')) {
		note('Scores were reset.');
		status.textContent = 'Pick a move.';
		setMovesEnabled(true);
	} else if (msg.startsWith('QUIT')) {
		note('The session is over.');
		status.textContent = 'Session over.';
		setMovesEnabled(false);
		ws.close();
	} else if (msg.startsWith('INFO:')) {
		note(msg.slice(5));
	} else {
		note(msg);
	}
};

moveButtons.forEach(b => b.addEventListener('click', () => {
	ws.send('MOVE:' + b.dataset.move);
	status.textContent = 'Waiting for the other players…';
	setMovesEnabled(false);
}));

document.getElementById('reset').addEventListener('click', () => ws.send('RESET'));
document.getElementById('quit').addEventListener('click', () => ws.send('QUIT'));

document.getElementById('qr').addEventListener('click', (ev) => {
	ev.preventDefault();
	const share = document.getElementById('share');
	const existing = share.querySelector('img');
	if (existing) {
		existing.remove();
		return;
	}
	const img = document.createElement('img');
	img.src = '/qr.png';
	img.alt = 'QR code for this table';
	share.appendChild(img);
});

setMovesEnabled(false);
</script>
</body>
</html>
`

func serveLobbyPage(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write([]byte(lobbyHTML))
	}
}

func serveHealthCheck(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

func serveRobots(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		data := `User-agent: Amazonbot
Disallow: /

User-agent: Applebot-Extended
Disallow: /

User-agent: Bytespider
Disallow: /

User-agent: CCBot
Disallow: /

User-agent: ClaudeBot
Disallow: /

User-agent: Google-Extended
Disallow: /

User-agent: GPTBot
Disallow: /

User-agent: meta-externalagent
Disallow: /`

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(data))
		if err != nil {
			errs <- err

			return
		}
	}
}
