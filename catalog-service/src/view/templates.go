package view

const fragmentTemplates = `
{{define "cards"}}
{{- range .}}
<div class="card fade-in" data-tilt="true">
  <div class="card-inner">
    <div class="badge">Deal</div>
    <div class="img-wrap"><img src="{{.Image}}" alt="{{.Title}}" loading="lazy"/></div>
    <h3>{{.Title}}</h3>
    <p>{{.Description}}</p>
    <div class="row">
      <a class="btn" href="{{.Link}}" target="_blank" rel="noopener">View on Amazon</a>
    </div>
  </div>
</div>
{{- end}}
{{end}}

{{define "message"}}<p class="catalog-message" style="text-align:center;color:var(--muted);padding:40px">{{.}}</p>{{end}}

{{define "skeletons"}}
{{- range .}}
<div class="skeleton">
  <div class="skel-img shimmer"></div>
  <div style="height:12px"></div>
  <div class="skel-line shimmer" style="width:70%"></div>
  <div style="height:10px"></div>
  <div class="skel-line shimmer" style="width:45%"></div>
</div>
{{- end}}
{{end}}
`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/static/style.css"/>
</head>
<body class="{{.Theme.BodyClass}}">
<header class="site-header fade-in">
  <a class="brand" href="/">{{.Title}}</a>
  <nav class="categories">
    <a href="#" data-category="all">All</a>
    {{- range .Categories}}
    <a href="#" data-category="{{.}}">{{.}}</a>
    {{- end}}
  </nav>
  {{- with .Bindings.SearchBox}}
  <input id="{{.}}" type="search" placeholder="Search deals..." autocomplete="off"/>
  {{- end}}
  {{- with .Bindings.ThemeToggle}}
  <button id="{{.}}" class="theme-toggle" type="button" aria-label="Toggle theme">{{$.Theme.Icon}}</button>
  {{- end}}
</header>
<main>
  <section {{with .Bindings.ProductSection}}id="{{.}}" {{end}}class="grid">{{.Skeletons}}</section>
</main>
{{- with .Bindings.ScrollTopBtn}}
<button id="{{.}}" class="scroll-top" type="button" style="display:none" aria-label="Back to top">↑</button>
{{- end}}
<script>
(function(){
  var sectionId={{.Bindings.ProductSection}};
  var section=sectionId?document.getElementById(sectionId):null;
  if(!section){ return; }
  var strength={{.TiltStrength}};

  function attachTilt(root){
    root.querySelectorAll('[data-tilt]').forEach(function(card){
      if(card.__gdTilt){ return; }
      card.__gdTilt=true;
      var inner=card.querySelector('.card-inner');
      if(!inner){ return; }
      var rect=null;
      card.addEventListener('mousemove',function(e){
        rect=rect||card.getBoundingClientRect();
        var rx=(e.clientX-rect.left)/rect.width;
        var ry=(e.clientY-rect.top)/rect.height;
        var dx=(rx-0.5)*strength;
        var dy=(0.5-ry)*strength;
        inner.style.transform='rotateX('+dy+'deg) rotateY('+dx+'deg) translateZ(6px)';
      });
      card.addEventListener('mouseleave',function(){
        rect=null;
        inner.style.transform='rotateX(0) rotateY(0) translateZ(0)';
      });
      card.addEventListener('mousedown',function(){
        inner.style.transition='transform 120ms';
        inner.style.transform+=' scale(0.995)';
        setTimeout(function(){ inner.style.transition=''; },160);
      });
    });
  }

  function swap(res){
    if(res.status===204||(!res.ok&&res.status!==502)){ return; }
    return res.text().then(function(html){
      section.innerHTML=html;
      attachTilt(section);
      if(window.__gdObserveFades){ window.__gdObserveFades(section); }
    });
  }
  function fail(err){ console.error(err); }

  window.filterProducts=function(cat){
    fetch('/catalog?category='+encodeURIComponent(cat),{cache:'no-store'}).then(swap).catch(fail);
  };
  window.searchProducts=function(q){
    fetch('/catalog?q='+encodeURIComponent(q),{cache:'no-store'}).then(swap).catch(fail);
  };

  document.querySelectorAll('[data-category]').forEach(function(link){
    link.addEventListener('click',function(e){
      e.preventDefault();
      window.filterProducts(link.getAttribute('data-category'));
    });
  });

  var searchId={{.Bindings.SearchBox}};
  var searchBox=searchId?document.getElementById(searchId):null;
  if(searchBox){
    searchBox.addEventListener('input',function(e){ window.searchProducts(e.target.value); });
  }

  fetch('/catalog/load',{cache:'no-store'}).then(swap).catch(fail);
})();
</script>
{{template "chrome-scripts" .}}
</body>
</html>`

const adminTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>{{.Title}} admin</title>
  <link rel="stylesheet" href="/static/style.css"/>
</head>
<body class="{{.Theme.BodyClass}}">
<main class="admin">
  <h1>Add product</h1>
  {{- with .Notice}}
  <p class="notice">{{.}}</p>
  {{- end}}
  {{- with .Error}}
  <p class="error">{{.}}</p>
  {{- end}}
  <form method="post" action="/admin/products">
    <input id="title" name="title" placeholder="Title" value="{{.Form.Title}}"/>
    <input id="image" name="image" placeholder="Image URL" value="{{.Form.Image}}"/>
    <input id="price" name="price" placeholder="Price" value="{{.Form.Price}}"/>
    <textarea id="desc" name="desc" placeholder="Description">{{.Form.Description}}</textarea>
    <input id="category" name="category" placeholder="Category" value="{{.Form.Category}}"/>
    <input id="link" name="link" placeholder="Affiliate link" value="{{.Form.Link}}"/>
    <button type="submit">Add product</button>
  </form>
  <p class="publisher">Publisher: {{.Publisher}}</p>
  <pre id="output">{{.Output}}</pre>
  <button id="copyBtn" type="button">Copy JSON</button>
</main>
<script>
(function(){
  var btn=document.getElementById('copyBtn');
  if(!btn){ return; }
  btn.addEventListener('click',function(){
    fetch('/admin/output',{cache:'no-store'})
      .then(function(res){
        if(!res.ok){
          return res.json().then(function(body){ alert(body.error&&body.error.message?body.error.message:{{.NothingToCopy}}); });
        }
        return res.text().then(function(text){
          return navigator.clipboard.writeText(text).then(function(){ alert({{.CopiedNotice}}); });
        });
      })
      .catch(function(err){ console.error(err); });
  });
})();
</script>
{{template "chrome-scripts" .}}
</body>
</html>`
