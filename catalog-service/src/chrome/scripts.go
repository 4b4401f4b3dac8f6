package chrome

// ScriptTemplates defines the "chrome-scripts" template. It expects a value
// with Theme, Chrome (Settings) and Bindings fields. An empty binding id
// leaves the matching behaviour out.
const ScriptTemplates = `
{{define "chrome-scripts"}}
<script>
(function(){
  var body=document.body;
  {{- with .Bindings.ThemeToggle}}
  var toggle=document.getElementById({{.}});
  if(toggle){
    toggle.addEventListener('click',function(){
      fetch('/theme/toggle',{method:'POST',headers:{'Accept':'application/json'},credentials:'same-origin'})
        .then(function(res){ return res.json(); })
        .then(function(state){
          body.classList.toggle('theme-dark',state.theme==='dark');
          toggle.textContent=state.icon;
        })
        .catch(function(err){ console.error(err); });
    });
  }
  {{- end}}

  if('IntersectionObserver' in window){
    var io=new IntersectionObserver(function(entries,obs){
      entries.forEach(function(en){
        if(en.isIntersecting){
          en.target.classList.add('appear');
          obs.unobserve(en.target);
        }
      });
    },{threshold:{{.Chrome.FadeThreshold}}});
    window.__gdObserveFades=function(root){
      (root||document).querySelectorAll('.fade-in:not(.appear)').forEach(function(f){ io.observe(f); });
    };
  } else {
    window.__gdObserveFades=function(root){
      (root||document).querySelectorAll('.fade-in').forEach(function(f){ f.classList.add('appear'); });
    };
  }
  window.__gdObserveFades(document);

  {{- with .Bindings.ScrollTopBtn}}
  var topBtn=document.getElementById({{.}});
  if(topBtn){
    window.addEventListener('scroll',function(){
      topBtn.style.display=window.scrollY>{{$.Chrome.ScrollThreshold}}?'block':'none';
    });
    topBtn.addEventListener('click',function(){ window.scrollTo({top:0,behavior:'smooth'}); });
  }
  {{- end}}
})();
</script>
{{end}}
`
