package dashboard

import (
	"net/http"

	"github.com/labstack/echo"
)

// indexHTML is the single page served by the dashboard. It renders the
// beats arriving over the websocket, so keeping it inline avoids shipping
// a separate frontend build.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>UTC Engineering Clock</title>
<style>
  body { background: #10141a; color: #d7dde4; font-family: "DejaVu Sans Mono", Menlo, monospace; text-align: center; }
  #hms { font-size: 96px; color: #4ea1ff; margin-top: 12vh; }
  #phase { font-size: 40px; color: #8091a5; }
  #detail { margin-top: 4vh; font-size: 16px; color: #8091a5; }
  #status { margin-top: 2vh; font-size: 13px; color: #5d6b7c; }
  #sync { margin-top: 1vh; font-size: 13px; color: #5d6b7c; }
</style>
</head>
<body>
<div id="hms">--:--:--</div>
<div id="phase">&nbsp;</div>
<div id="detail">waiting for beats ...</div>
<div id="status"></div>
<div id="sync"></div>
<script>
(function() {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "/ws");

  function pad(n) { return (n < 10 ? "0" : "") + n; }

  sock.onmessage = function(e) {
    var msg = JSON.parse(e.data);
    if (msg.type === 1) {
      var t = new Date(msg.data.nominal_ms);
      document.getElementById("hms").textContent =
        pad(t.getUTCHours()) + ":" + pad(t.getUTCMinutes()) + ":" + pad(t.getUTCSeconds());
      document.getElementById("phase").textContent = msg.data.phase;
      document.getElementById("detail").textContent = "Latency= " + msg.data.latency_us + "us";
    } else if (msg.type === 2) {
      document.getElementById("status").textContent =
        "offset " + msg.data.offset_ms.toFixed(3) + "ms ± " + msg.data.stddev_ms.toFixed(1) + "ms";
    } else if (msg.type === 0) {
      document.title = "UTC Engineering Clock " + msg.data.version;
      var server = msg.data.server ? " via " + msg.data.server : "";
      document.getElementById("sync").textContent =
        "sync " + msg.data.syncState + server + " | " + msg.data.bps.toFixed(1) + " beats/s";
    }
  };
  sock.onclose = function() {
    document.getElementById("detail").textContent = "connection lost";
  };
})();
</script>
</body>
</html>
`

func setupRoutes(e *echo.Echo) {
	e.GET("/", indexRoute)
	e.GET("/ws", websocketRoute)
	e.GET("/api/status", getStatus)
}

func indexRoute(c echo.Context) error {
	return c.HTML(http.StatusOK, indexHTML)
}

func getStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, currentClockStatus())
}
