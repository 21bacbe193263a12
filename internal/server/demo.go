package server

// demoPage is a self-contained preview UI. It only talks to the JSON and
// swatch endpoints, so it needs no static asset directory.
const demoPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>palettize</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
label { margin-right: 1rem; }
#swatch { margin-top: 1.5rem; display: block; max-width: 100%; }
#colors { margin-top: 1rem; font-family: monospace; }
</style>
</head>
<body>
<h1>palettize</h1>
<form id="form">
  <label>Base <input id="base" value="#c73d3d" size="14"></label>
  <label>Count <input id="count" type="number" min="2" max="20" value="8"></label>
  <label>Output
    <select id="to">
      <option value="hex">hex</option>
      <option value="rgb">rgb</option>
      <option value="hsl">hsl</option>
    </select>
  </label>
  <button type="submit">Generate</button>
</form>
<img id="swatch" alt="">
<ol id="colors"></ol>
<script>
const form = document.getElementById('form');
form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const base = encodeURIComponent(document.getElementById('base').value);
  const count = document.getElementById('count').value;
  const to = document.getElementById('to').value;
  const qs = 'base=' + base + '&count=' + count + '&to=' + to;

  document.getElementById('swatch').src = '/swatch.png?' + qs + '&t=' + Date.now();

  const resp = await fetch('/api/palette?' + qs);
  const doc = await resp.json();
  const list = document.getElementById('colors');
  list.innerHTML = '';
  for (const c of (doc.colors || [])) {
    const li = document.createElement('li');
    li.textContent = c;
    list.appendChild(li);
  }
});
form.dispatchEvent(new Event('submit'));
</script>
</body>
</html>
`
